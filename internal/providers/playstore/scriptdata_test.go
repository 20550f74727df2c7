package playstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

func TestDig(t *testing.T) {
	data := []interface{}{
		"zero",
		[]interface{}{1.5, "2.5", nil, true, []interface{}{"x"}},
	}

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"string", digString(data, 0), "zero"},
		{"number as string", digString(data, 1, 0), "1.5"},
		{"missing string", digString(data, 5), ""},
		{"float", digFloat(data, 1, 0), 1.5},
		{"float from string", digFloat(data, 1, 1), 2.5},
		{"int", digInt(data, 1, 0), int64(1)},
		{"nil is falsy", digBool(data, 1, 2), false},
		{"true", digBool(data, 1, 3), true},
		{"array is truthy", digBool(data, 1, 4), true},
		{"through a scalar", dig(data, 0, 1), nil},
		{"negative index", dig(data, -1), nil},
		{"array", len(digArray(data, 1, 4)), 1},
		{"missing array", len(digArray(data, 3)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestExtractInitData(t *testing.T) {
	doc, err := loadDocument([]byte(page(
		`<script>AF_initDataCallback({key: 'ds:3', hash: '2', data:[1,"a, sideChannel: b"], sideChannel: {}});</script>`,
		`<script>AF_initDataCallback({key: 'ds:5', hash: '9', data:[[null,[2]]], sideChannel: {}});</script>`,
		`<script>var other = 1;</script>`,
	)))
	require.NoError(t, err)

	data := extractInitData(doc)
	require.Len(t, data, 2)

	v, err := data.decode("ds:3")
	require.NoError(t, err)
	assert.Equal(t, "a, sideChannel: b", digString(v, 1))

	v, err = data.decode("ds:5")
	require.NoError(t, err)
	assert.Equal(t, 2.0, digFloat(v, 0, 1, 0))

	_, err = data.decode("ds:4")
	assert.ErrorIs(t, err, playstore.ErrUnexpectedPayload)
}

func TestDecodeBatchResponse(t *testing.T) {
	t.Run("single line body", func(t *testing.T) {
		v, err := decodeBatchResponse([]byte(`)]}'`+"\n"+`[["wrb.fr","abc","[1,2]"]]`), "abc")
		require.NoError(t, err)
		assert.Equal(t, []interface{}{1.0, 2.0}, v)
	})

	t.Run("chunked body", func(t *testing.T) {
		body := ")]}'\n\n27\n" + `[["wrb.fr","abc","[\"x\"]"]]` + "\n25\n" + `[["e",4,null,null,120]]` + "\n"
		v, err := decodeBatchResponse([]byte(body), "abc")
		require.NoError(t, err)
		assert.Equal(t, []interface{}{"x"}, v)
	})

	t.Run("other rpc only", func(t *testing.T) {
		_, err := decodeBatchResponse([]byte(`)]}'`+"\n"+`[["wrb.fr","zzz","[]"]]`), "abc")
		assert.ErrorIs(t, err, playstore.ErrUnexpectedPayload)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := decodeBatchResponse([]byte(`)]}'`+"\n"+`[["wrb.fr","abc","[1,"]]`), "abc")
		assert.ErrorIs(t, err, playstore.ErrUnexpectedPayload)
	})
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "a\nb & c", plainText("a<br/>b &amp; <b>c</b>"))
	assert.Equal(t, "", plainText("  "))
}

func TestUTF8ReaderLimits(t *testing.T) {
	_, err := utf8Reader(nil)
	assert.Error(t, err)

	_, err = utf8Reader(make([]byte, MaxPageSize+1))
	assert.Error(t, err)
}

func TestLoadDocumentLatin1(t *testing.T) {
	// "Café" in ISO-8859-1
	body := append([]byte("<html><body><p>Caf"), 0xe9, '<', '/', 'p', '>')
	body = append(body, []byte("</body></html>")...)

	doc, err := loadDocument(body)
	require.NoError(t, err)
	assert.Contains(t, doc.Find("p").Text(), "Caf")
}
