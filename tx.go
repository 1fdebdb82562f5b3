package weave

import (
	"reflect"
	"regexp"

	"github.com/iov-one/tokenswap/errors"
)

// Msg is message for the ledger to take an action
// (Make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Return the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	//
	// Multiple types may have the same value, and will end up at the
	// same Handler.
	//
	// Must be alphanumeric [0-9A-Za-z_\-/]+
	Path() string

	// Validate performs a sanity checks on this message. It returns an
	// error if at least one of the checks fails.
	Validate() error
}

// Marshaller is anything that can be represented in binary
//
// Marshall may validate the data before serializing it and
// unless you previously validated the struct,
// errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
//
// As with Marshaller, this may do internal validation on the data
// and errors should be expected.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represent the data sent from the user to the chain.
// It includes the actual message, along with information needed
// to authenticate the sender (cryptographic signatures),
// and anything else needed to pass through middleware.
//
// Each Application must define their own tx type, which
// embeds all the middlewares that we wish to use.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	if tx == nil {
		return "(missing)"
	}
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

var validPath = regexp.MustCompile(`^[0-9A-Za-z_\-/]+$`).MatchString

// IsValidPath returns true if the given message path is well formed.
func IsValidPath(path string) bool {
	return validPath(path)
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning message validation method is called.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if isNilMsg(msg) {
		return errors.Wrap(errors.ErrState, "nil message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	// Reflection magic below. This is equal to what the Go json unmarshal
	// does. Both the destination and the message are pointers and the
	// value the message points to is copied into the destination.

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non nil pointer")
	}
	res := reflect.ValueOf(msg)
	if res.Kind() != reflect.Ptr {
		return errors.Wrapf(errors.ErrType, "message %T must be a pointer", msg)
	}
	if !res.Elem().Type().AssignableTo(dest.Elem().Type()) {
		return errors.Wrapf(errors.ErrType, "message type %T not assignable to %T", msg, destination)
	}
	dest.Elem().Set(res.Elem())
	return nil
}

// ExtractMsgFromSum will find a weave message from a tx sum field.
// Each application keeps its messages in optional fields, exactly one of
// which must be set.
func ExtractMsgFromSum(fields ...Msg) (Msg, error) {
	var found Msg
	for _, f := range fields {
		if isNilMsg(f) {
			continue
		}
		if found != nil {
			return nil, errors.Wrap(errors.ErrState, "more than one message set")
		}
		found = f
	}
	if found == nil {
		return nil, errors.Wrap(errors.ErrState, "message container is empty")
	}
	return found, nil
}

func isNilMsg(m Msg) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
