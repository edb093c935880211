package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want any
	}{
		{
			name: "object",
			body: `{"a":1}`,
			want: map[string]any{"a": float64(1)},
		},
		{
			name: "array",
			body: `[1,2]`,
			want: []any{float64(1), float64(2)},
		},
		{
			name: "bare string literal",
			body: `"hi"`,
			want: "hi",
		},
		{
			name: "number literal",
			body: `42`,
			want: float64(42),
		},
		{
			name: "plain text stays raw",
			body: "plain text",
			want: "plain text",
		},
		{
			name: "empty stays raw",
			body: "",
			want: "",
		},
		{
			name: "truncated JSON stays raw",
			body: `{"a":`,
			want: `{"a":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeBody(tt.body))
		})
	}
}

func TestResponse_Header(t *testing.T) {
	resp := &Response{Headers: map[string]string{"Content-Type": "application/json"}}

	assert.Equal(t, "application/json", resp.Header("content-type"))
	assert.Equal(t, "application/json", resp.Header("Content-Type"))
	assert.Equal(t, "", resp.Header("X-Missing"))
}

func TestResponse_Get(t *testing.T) {
	resp := &Response{raw: `{"items":[{"id":7}],"name":"x"}`}

	assert.Equal(t, int64(7), resp.Get("items.0.id").Int())
	assert.Equal(t, "x", resp.Get("name").String())
	assert.False(t, resp.Get("missing").Exists())
}

func TestResponse_GetOnNonJSON(t *testing.T) {
	resp := &Response{raw: "plain text"}

	assert.False(t, resp.Get("anything").Exists())
}
