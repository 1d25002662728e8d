package page

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Page states.
const (
	StateIdle       = "idle"
	StateValidating = "validating"
	StateLoading    = "loading"
	StateSuccess    = "success"
	StateError      = "error"
)

const (
	eventSubmit   = "SUBMIT"
	eventReject   = "REJECT"
	eventDispatch = "DISPATCH"
	eventResolve  = "RESOLVE"
	eventFail     = "FAIL"
)

type machineContext struct {
	PageID string
}

type stateMachine struct {
	interpreter *statekit.Interpreter[machineContext]
}

func newStateMachine(pageID string) (*stateMachine, error) {
	builder := statekit.NewMachine[machineContext]("page-" + pageID).
		WithInitial(statekit.StateID(StateIdle)).
		WithContext(machineContext{PageID: pageID})

	builder.State(StateIdle).
		On(eventSubmit).Target(StateValidating).
		Done()

	builder.State(StateValidating).
		On(eventReject).Target(StateError).
		On(eventDispatch).Target(StateLoading).
		Done()

	// Loading не принимает SUBMIT: один запрос за раз.
	builder.State(StateLoading).
		On(eventResolve).Target(StateSuccess).
		On(eventFail).Target(StateError).
		Done()

	builder.State(StateSuccess).
		On(eventSubmit).Target(StateValidating).
		Done()

	builder.State(StateError).
		On(eventSubmit).Target(StateValidating).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build page state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &stateMachine{interpreter: interpreter}, nil
}

func (sm *stateMachine) fire(event string) error {
	before := sm.current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	if sm.current() == before {
		return fmt.Errorf("event %s is not allowed in state %s", event, before)
	}
	return nil
}

func (sm *stateMachine) current() string {
	return string(sm.interpreter.State().Value)
}
