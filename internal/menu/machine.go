package menu

import (
	"errors"
	"fmt"

	"passvault/internal/domain"
)

// State is a point in the shell's navigation.
type State int

const (
	AwaitingKey State = iota
	AwaitingFile
	Managing
)

func (s State) String() string {
	switch s {
	case AwaitingKey:
		return "awaiting-key"
	case AwaitingFile:
		return "awaiting-file"
	case Managing:
		return "managing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Action is something the driver asks the machine to do.
type Action int

const (
	CreateKey Action = iota
	LoadKey
	SetKey
	CreateFile
	LoadFile
	Add
	Get
	List
	Quit
)

func (a Action) String() string {
	switch a {
	case CreateKey:
		return "create-key"
	case LoadKey:
		return "load-key"
	case SetKey:
		return "set-key"
	case CreateFile:
		return "create-file"
	case LoadFile:
		return "load-file"
	case Add:
		return "add"
	case Get:
		return "get"
	case List:
		return "list"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ErrActionNotPermitted is returned for an action the current state does not allow.
var ErrActionNotPermitted = errors.New("action not permitted in this state")

// ErrDone is returned for any action after Quit.
var ErrDone = errors.New("session closed")

var permitted = map[State][]Action{
	AwaitingKey:  {CreateKey, LoadKey, SetKey, Quit},
	AwaitingFile: {CreateKey, LoadKey, SetKey, CreateFile, LoadFile, Quit},
	Managing:     {CreateFile, LoadFile, Add, Get, List, Quit},
}

// Request carries the inputs an action needs. Unused fields are ignored.
type Request struct {
	Path   string
	Site   string
	Secret string
	Key    []byte
}

// Result is what an action produced.
type Result struct {
	Key    domain.SymmetricKey
	Secret string
	Sites  []string
	// Warning is a failure the session survived, such as a key that was
	// generated but could not be saved.
	Warning error
}

// Machine drives a key manager and a password store through the shell states.
type Machine struct {
	keys      domain.KeyManager
	passwords domain.PasswordStore
	state     State
	done      bool
}

// New returns a machine in AwaitingKey.
func New(keys domain.KeyManager, passwords domain.PasswordStore) *Machine {
	return &Machine{keys: keys, passwords: passwords, state: AwaitingKey}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Done reports whether Quit has been applied.
func (m *Machine) Done() bool { return m.done }

// Actions lists what the current state permits.
func (m *Machine) Actions() []Action {
	if m.done {
		return nil
	}
	return append([]Action(nil), permitted[m.state]...)
}

// Permitted reports whether a is allowed in the current state.
func (m *Machine) Permitted(a Action) bool {
	if m.done {
		return false
	}
	for _, p := range permitted[m.state] {
		if p == a {
			return true
		}
	}
	return false
}

// Apply runs a and moves to the next state on success.
func (m *Machine) Apply(a Action, req Request) (Result, error) {
	if m.done {
		return Result{}, ErrDone
	}
	if !m.Permitted(a) {
		return Result{}, fmt.Errorf("%w: %s in %s", ErrActionNotPermitted, a, m.state)
	}

	var res Result
	switch a {
	case CreateKey:
		k, err := m.keys.Create(req.Path)
		res = Result{Key: k, Warning: err}
	case LoadKey:
		k, err := m.keys.Load(req.Path)
		if err != nil {
			return Result{}, err
		}
		res.Key = k
	case SetKey:
		if len(req.Key) == 0 {
			return Result{}, domain.ErrKeyNotSet
		}
		res.Key = m.keys.SetManual(req.Key)
	case CreateFile:
		if err := m.passwords.InitializeEmpty(req.Path, nil); err != nil {
			return Result{}, err
		}
	case LoadFile:
		if err := m.passwords.Load(req.Path); err != nil {
			return Result{}, err
		}
	case Add:
		if err := m.passwords.Add(req.Site, req.Secret); err != nil {
			return Result{}, err
		}
	case Get:
		secret, err := m.passwords.Get(req.Site)
		if err != nil {
			return Result{}, err
		}
		res.Secret = secret
	case List:
		res.Sites = m.passwords.Sites()
	case Quit:
		m.done = true
		return res, nil
	}

	m.state = next(m.state, a)
	return res, nil
}

func next(s State, a Action) State {
	switch a {
	case CreateKey, LoadKey, SetKey:
		return AwaitingFile
	case CreateFile, LoadFile:
		return Managing
	default:
		return s
	}
}
