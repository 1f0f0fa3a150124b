// Package session is the admin panel's login toggle.
//
// It is NOT a security boundary. The credential is a fixed plaintext
// literal compared with ==, with no hashing, lockout or rate limiting.
// Anyone with access to the terminal or the binary can read or bypass it.
// It only keeps casual readers out of the editing screens. Hardening
// belongs behind the Verifier interface and must be an explicit change.
package session

type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Password is the fixed admin credential.
const Password = "admin123"

// Verifier decides whether a submitted password opens the gate.
type Verifier interface {
	Verify(password string) bool
}

// Plaintext compares by exact string equality.
type Plaintext string

func (p Plaintext) Verify(password string) bool {
	return password == string(p)
}

// Gate is not safe for concurrent use. The UI update loop owns it.
type Gate struct {
	verifier Verifier
	state    State
}

// New returns an Unauthenticated gate using the fixed plaintext credential.
func New() *Gate {
	return NewWithVerifier(Plaintext(Password))
}

func NewWithVerifier(v Verifier) *Gate {
	return &Gate{verifier: v, state: Unauthenticated}
}

// Submit moves to Authenticated when the password matches; otherwise the
// state is left unchanged.
func (g *Gate) Submit(password string) bool {
	if g.verifier.Verify(password) {
		g.state = Authenticated
		return true
	}
	return false
}

func (g *Gate) Logout() {
	g.state = Unauthenticated
}

func (g *Gate) State() State {
	return g.state
}

func (g *Gate) Authenticated() bool {
	return g.state == Authenticated
}
