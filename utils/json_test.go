package utils

import (
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	type vector struct {
		Name   string `json:"name"`
		Input  string `json:"input"`
		Repeat int    `json:"repeat,omitempty"`
	}

	v := vector{Name: "tiger<2>", Input: "a&b"}
	buf, err := MarshalJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != `{"name":"tiger<2>","input":"a&b"}` {
		t.Fatalf("unexpected encoding %s", buf)
	}

	var decoded vector
	if err = UnmarshalJSON(buf, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != v {
		t.Errorf("got %+v, expected %+v", decoded, v)
	}

	if err = UnmarshalJSON([]byte(`{"name":`), &decoded); err == nil {
		t.Errorf("truncated input must fail")
	}
}
