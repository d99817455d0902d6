package infobox_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/infobox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterMap_Set(t *testing.T) {
	t.Parallel()

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()

		m := infobox.NewParameterMap()
		m.Set("z", "1")
		m.Set("a", "2")
		m.Set("m", "3")

		assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
	})

	t.Run("overwrite keeps original position", func(t *testing.T) {
		t.Parallel()

		m := infobox.NewParameterMap()
		m.Set("a", "1")
		m.Set("b", "2")
		m.Set("a", "3")

		assert.Equal(t, []string{"a", "b"}, m.Keys())
		v, _ := m.Get("a")
		assert.Equal(t, "3", v)
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()

		var m infobox.ParameterMap
		m.Set("a", "1")

		assert.Equal(t, 1, m.Len())
	})

	t.Run("nil map reads as empty", func(t *testing.T) {
		t.Parallel()

		var m *infobox.ParameterMap

		_, ok := m.Get("a")
		assert.False(t, ok)
		assert.Equal(t, 0, m.Len())
		assert.Nil(t, m.Keys())
		assert.Nil(t, m.Values("a"))
	})
}

func TestParameterMap_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("preserves key order", func(t *testing.T) {
		t.Parallel()

		m := infobox.NewParameterMap()
		m.Set("název", "Voda")
		m.Set("číslo CAS", "7732-18-5")
		m.Set("a", "")

		b, err := json.Marshal(m)

		require.NoError(t, err)
		assert.Equal(t, `{"název":"Voda","číslo CAS":"7732-18-5","a":""}`, string(b))
	})

	t.Run("encodes empty map as object", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(infobox.NewParameterMap())

		require.NoError(t, err)
		assert.Equal(t, `{}`, string(b))
	})

	t.Run("encodes record with title and infobox", func(t *testing.T) {
		t.Parallel()

		m := infobox.NewParameterMap()
		m.Set("b", "2")
		m.Set("a", "1")
		rec := &infobox.Record{ID: "x", DumpID: "d", Title: "Voda", Infobox: m, Position: 3}

		b, err := json.Marshal(rec)

		require.NoError(t, err)
		assert.Equal(t, `{"title":"Voda","infobox":{"b":"2","a":"1"}}`, string(b))
	})
}

func TestParameterMap_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("preserves key order", func(t *testing.T) {
		t.Parallel()

		var m infobox.ParameterMap
		err := json.Unmarshal([]byte(`{"z":"1","a":"2"}`), &m)

		require.NoError(t, err)
		assert.Equal(t, []string{"z", "a"}, m.Keys())
	})

	t.Run("accepts arrays of strings", func(t *testing.T) {
		t.Parallel()

		var m infobox.ParameterMap
		err := json.Unmarshal([]byte(`{"číslo CAS":["50-00-0","30525-89-4"]}`), &m)

		require.NoError(t, err)
		assert.Equal(t, []string{"50-00-0", "30525-89-4"}, m.Values("číslo CAS"))
		v, _ := m.Get("číslo CAS")
		assert.Equal(t, "50-00-0,30525-89-4", v)
	})

	t.Run("round trips multi-valued fields as arrays", func(t *testing.T) {
		t.Parallel()

		var m infobox.ParameterMap
		require.NoError(t, json.Unmarshal([]byte(`{"a":["1","2"],"b":"3"}`), &m))

		b, err := json.Marshal(&m)

		require.NoError(t, err)
		assert.Equal(t, `{"a":["1","2"],"b":"3"}`, string(b))
	})

	t.Run("rejects non-object", func(t *testing.T) {
		t.Parallel()

		var m infobox.ParameterMap
		err := json.Unmarshal([]byte(`["a"]`), &m)

		assert.Error(t, err)
	})

	t.Run("rejects numeric values", func(t *testing.T) {
		t.Parallel()

		var m infobox.ParameterMap
		err := json.Unmarshal([]byte(`{"a":1}`), &m)

		assert.Error(t, err)
	})

	t.Run("decodes records list", func(t *testing.T) {
		t.Parallel()

		var recs []*infobox.Record
		err := json.Unmarshal([]byte(`[{"title":"Voda","infobox":{"a":"1"}},{"title":"Etanol","infobox":{}}]`), &recs)

		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "Voda", recs[0].Title)
		assert.Equal(t, 1, recs[0].Infobox.Len())
		assert.Equal(t, 0, recs[1].Infobox.Len())
	})
}
