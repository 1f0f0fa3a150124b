package tui

import "github.com/sadopc/sejarah/internal/content"

// builtinEvents is shown on the timeline until the admin adds events.
var builtinEvents = []content.Event{
	{
		ID:              "1",
		Year:            "610",
		HijriYear:       "1",
		Title:           "Wahyu Pertama",
		Subtitle:        "Turunnya wahyu pertama di Gua Hira",
		Category:        "Wahyu",
		Location:        "Makkah",
		BackgroundImage: "https://images.unsplash.com/photo-1466442929976-97f336a657be?w=400",
		Description:     "Peristiwa turunnya wahyu pertama kepada Nabi Muhammad SAW di Gua Hira...",
	},
	{
		ID:              "2",
		Year:            "622",
		HijriYear:       "1",
		Title:           "Hijrah ke Madinah",
		Subtitle:        "Perpindahan kaum Muslim dari Makkah ke Madinah",
		Category:        "Hijrah",
		Location:        "Madinah",
		BackgroundImage: "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?w=400",
		Description:     "Peristiwa hijrah yang menandai dimulainya tahun Hijriyah...",
	},
	{
		ID:              "khandaq",
		Year:            "627",
		HijriYear:       "5",
		Title:           "Pertempuran Sekutu",
		Subtitle:        "Keteguhan Iman di Tengah Kepungan",
		Category:        "Perang",
		Location:        "Madinah Al-Munawwarah",
		BackgroundImage: "https://images.unsplash.com/photo-1469041797191-50ace28483c3?w=800",
		Description:     "Perang Al-Ahzab atau Perang Khandaq merupakan salah satu peperangan terbesar yang dihadapi umat Islam pada masa Nabi Muhammad SAW. Perang ini terjadi ketika berbagai suku Arab bersatu untuk menyerang Madinah.",
	},
	{
		ID:              "3",
		Year:            "629",
		HijriYear:       "8",
		Title:           "Fathu Makkah",
		Subtitle:        "Pembebasan kota Makkah",
		Category:        "Penaklukan",
		Location:        "Makkah",
		BackgroundImage: "https://images.unsplash.com/photo-1469041797191-50ace28483c3?w=400",
		Description:     "Pembebasan kota Makkah oleh kaum Muslim...",
	},
	{
		ID:              "4",
		Year:            "661",
		HijriYear:       "41",
		Title:           "Dinasti Umayyah",
		Subtitle:        "Berdirinya Dinasti Umayyah di Damaskus",
		Category:        "Pemerintahan",
		Location:        "Damaskus",
		BackgroundImage: "https://images.unsplash.com/photo-1472396961693-142e6e269027?w=400",
		Description:     "Dinasti Umayyah menjadi kekhalifahan pertama...",
	},
	{
		ID:              "5",
		Year:            "750",
		HijriYear:       "132",
		Title:           "Dinasti Abbasiyah",
		Subtitle:        "Dimulainya era keemasan Islam",
		Category:        "Pemerintahan",
		Location:        "Baghdad",
		BackgroundImage: "https://images.unsplash.com/photo-1492321936769-b49830bc1d1e?w=400",
		Description:     "Era keemasan peradaban Islam dimulai...",
	},
}

var builtinCategories = []content.Category{
	{
		ID:          "1",
		Name:        "Periode Makkah",
		Description: "Awal dakwah dan pembentukan umat",
		Image:       "https://images.unsplash.com/photo-1466442929976-97f336a657be?w=400",
		EventCount:  25,
		Color:       "from-emerald-500 to-emerald-600",
	},
	{
		ID:          "2",
		Name:        "Periode Madinah",
		Description: "Pembentukan negara Islam pertama",
		Image:       "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?w=400",
		EventCount:  32,
		Color:       "from-primary to-primary-glow",
	},
	{
		ID:          "3",
		Name:        "Khulafaur Rasyidin",
		Description: "Era empat khalifah pertama",
		Image:       "https://images.unsplash.com/photo-1469041797191-50ace28483c3?w=400",
		EventCount:  28,
		Color:       "from-accent to-accent-glow",
	},
	{
		ID:          "4",
		Name:        "Dinasti Umayyah",
		Description: "Ekspansi Islam ke berbagai benua",
		Image:       "https://images.unsplash.com/photo-1472396961693-142e6e269027?w=400",
		EventCount:  45,
		Color:       "from-earth to-amber-600",
	},
	{
		ID:          "5",
		Name:        "Dinasti Abbasiyah",
		Description: "Era keemasan peradaban Islam",
		Image:       "https://images.unsplash.com/photo-1492321936769-b49830bc1d1e?w=400",
		EventCount:  67,
		Color:       "from-blue-500 to-blue-600",
	},
	{
		ID:          "6",
		Name:        "Islam Nusantara",
		Description: "Penyebaran Islam di Asia Tenggara",
		Image:       "https://images.unsplash.com/photo-1466442929976-97f336a657be?w=400",
		EventCount:  38,
		Color:       "from-green-500 to-emerald-500",
	},
}

type participant struct {
	name  string
	role  string
	count string
}

// eventStory is the long-form material the detail view shows for a
// built-in event: place, parties, narrative and sources.
type eventStory struct {
	hijriMonth   string
	duration     string
	lat, lon     float64
	participants []participant
	keyPoints    []string
	impact       string
	references   []string
}

// builtinStories is keyed by event ID. Events without an entry get the
// short detail view.
var builtinStories = map[string]eventStory{
	"khandaq": {
		hijriMonth: "Syawal",
		duration:   "1 bulan",
		lat:        24.4667,
		lon:        39.6138,
		participants: []participant{
			{name: "Muslimin", role: "Pembela Madinah", count: "3,000"},
			{name: "Quraisy", role: "Pemimpin Koalisi", count: "4,000"},
			{name: "Ghatafan", role: "Sekutu Quraisy", count: "2,000"},
			{name: "Banu Quraizah", role: "Pengkhianat Perjanjian", count: "700"},
		},
		keyPoints: []string{
			"Strategi penggalian parit (khandaq) atas usulan Salman Al-Farisi",
			"Kepungan Madinah selama hampir satu bulan",
			"Pengkhianatan Banu Quraizah yang melanggar perjanjian",
			"Kemenangan Islam melalui badai yang menghancurkan perkemahan musuh",
		},
		impact: "Perang ini menandai berakhirnya ancaman besar terhadap Madinah dan memperkuat posisi umat Islam di Jazirah Arab.",
		references: []string{
			"Sirah Nabawiyah - Ibnu Hisyam",
			"Al-Bidayah wa an-Nihayah - Ibnu Katsir",
			"Fiqh as-Sirah - Muhammad al-Ghazali",
			"The Sealed Nectar - Safi-ur-Rahman al-Mubarakpuri",
		},
	},
}
