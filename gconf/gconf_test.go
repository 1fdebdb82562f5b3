package gconf

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestSaveLoad(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Conf        *myconfig
		WantSaveErr *errors.Error
	}{
		"valid configuration": {
			Conf: &myconfig{Owner: owner, Num: 852151421, Str: "foobar", Deposit: 5},
		},
		"only the owner is required": {
			Conf: &myconfig{Owner: owner},
		},
		"invalid owner cannot be saved": {
			Conf:        &myconfig{Owner: weave.Address("too short")},
			WantSaveErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			err := Save(db, "mypkg", tc.Conf)
			if tc.WantSaveErr != nil {
				assert.IsErr(t, tc.WantSaveErr, err)
				return
			}
			assert.Nil(t, err)

			var got myconfig
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, tc.Conf, &got)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	db := store.MemStore()
	var c myconfig
	assert.IsErr(t, errors.ErrNotFound, Load(db, "mypkg", &c))
}

func TestInitConfig(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	raw, err := json.Marshal(map[string]interface{}{
		"mypkg": map[string]interface{}{
			"Owner": owner,
			"Num":   42,
		},
	})
	assert.Nil(t, err)
	opts := weave.Options{"conf": raw}

	db := store.MemStore()
	var c myconfig
	assert.Nil(t, InitConfig(db, opts, "mypkg", &c))

	var got myconfig
	assert.Nil(t, Load(db, "mypkg", &got))
	assert.Equal(t, int64(42), got.Num)
	assert.Equal(t, owner, got.Owner)

	err = InitConfig(db, opts, "otherpkg", &c)
	assert.IsErr(t, errors.ErrNotFound, err)
}
