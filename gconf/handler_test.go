package gconf

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestUpdateConfigurationHandler(t *testing.T) {
	cond := weavetest.NewCondition()

	cases := map[string]struct {
		// Init is the stored configuration, nil for none.
		Init ValidMarshaler

		Msg            weave.Msg
		MsgConditions  []weave.Condition
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error

		// WantConfig is the stored configuration after delivery.
		WantConfig *myconfig
	}{
		"success": {
			Init: &myconfig{Owner: cond.Address(), Num: 5125, Str: "foobar", Deposit: 10},
			Msg: &myconfigMsg{
				Patch: &myconfig{Owner: cond.Address(), Num: 333, Str: "boing!", Deposit: 4},
			},
			MsgConditions: []weave.Condition{cond},
			WantConfig:    &myconfig{Owner: cond.Address(), Num: 333, Str: "boing!", Deposit: 4},
		},
		"message must be signed by the configuration owner": {
			Init:           &myconfig{Owner: cond.Address(), Num: 5125, Str: "foobar", Deposit: 10},
			MsgConditions:  []weave.Condition{weavetest.NewCondition()},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"zero values are not updating the configuration": {
			Init: &myconfig{Owner: cond.Address(), Num: 5125, Str: "foobar", Deposit: 10},
			Msg: &myconfigMsg{
				Patch: &myconfig{Owner: cond.Address(), Num: 0, Str: "", Deposit: 0},
			},
			MsgConditions: []weave.Condition{cond},
			WantConfig:    &myconfig{Owner: cond.Address(), Num: 5125, Str: "foobar", Deposit: 10},
		},
		"invalid configuration is not accepted": {
			Init: &myconfig{Owner: cond.Address(), Num: 5125, Str: "foobar", Deposit: 10},
			Msg: &myconfigMsg{
				Patch: &myconfig{Owner: cond.Address(), Num: -1},
			},
			MsgConditions:  []weave.Condition{cond},
			WantCheckErr:   errors.ErrInput,
			WantDeliverErr: errors.ErrInput,
		},
		"missing configuration has no owner": {
			Msg: &myconfigMsg{
				Patch: &myconfig{Owner: cond.Address(), Num: 1},
			},
			MsgConditions:  []weave.Condition{cond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"patch of another configuration type": {
			Init:           &myconfig{Owner: cond.Address(), Num: 5125},
			Msg:            &otherMsg{Patch: &otherconfig{Limit: 3}},
			MsgConditions:  []weave.Condition{cond},
			WantCheckErr:   errors.ErrMsg,
			WantDeliverErr: errors.ErrMsg,
			WantConfig:     &myconfig{Owner: cond.Address(), Num: 5125},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()

			if tc.Init != nil {
				if err := Save(db, "mypkg", tc.Init); err != nil {
					t.Fatalf("cannot save initial configuration: %s", err)
				}
			}

			var c myconfig
			auth := &weavetest.CtxAuth{Key: "auth"}
			handler := NewUpdateConfigurationHandler("mypkg", &c, auth)

			ctx := weave.WithHeight(context.Background(), 999)
			ctx = weave.WithChainID(ctx, "mychain-123")
			ctx = auth.SetConditions(ctx, tc.MsgConditions...)

			tx := &weavetest.Tx{Msg: tc.Msg}

			cache := db.CacheWrap()
			if _, err := handler.Check(ctx, cache, tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()

			if _, err := handler.Deliver(ctx, db, tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			if tc.WantConfig != nil {
				var got myconfig
				if err := Load(db, "mypkg", &got); err != nil {
					t.Fatalf("cannot load configuration from the database: %s", err)
				}
				assert.Equal(t, tc.WantConfig, &got)
			}
		})
	}
}

type myconfig struct {
	Owner   weave.Address
	Num     int64
	Str     string
	Deposit uint64
}

func (c *myconfig) GetOwner() weave.Address    { return c.Owner }
func (c *myconfig) Marshal() ([]byte, error)   { return json.Marshal(c) }
func (c *myconfig) Unmarshal(raw []byte) error { return json.Unmarshal(raw, &c) }

func (c *myconfig) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if c.Num < 0 {
		return errors.Wrap(errors.ErrInput, "negative number")
	}
	return nil
}

type myconfigMsg struct {
	Patch *myconfig
}

var _ weave.Msg = (*myconfigMsg)(nil)

func (msg *myconfigMsg) Marshal() ([]byte, error)   { return json.Marshal(msg) }
func (msg *myconfigMsg) Unmarshal(raw []byte) error { return json.Unmarshal(raw, &msg) }
func (msg *myconfigMsg) Path() string               { return "myconfig" }
func (msg *myconfigMsg) Validate() error            { return msg.Patch.Validate() }

type otherconfig struct {
	Limit uint64
}

type otherMsg struct {
	Patch *otherconfig
}

var _ weave.Msg = (*otherMsg)(nil)

func (msg *otherMsg) Marshal() ([]byte, error)   { return json.Marshal(msg) }
func (msg *otherMsg) Unmarshal(raw []byte) error { return json.Unmarshal(raw, &msg) }
func (msg *otherMsg) Path() string               { return "other" }
func (msg *otherMsg) Validate() error            { return nil }
