package pnl

import (
	"encoding/json"
	"strings"
	"testing"
)

const refFeedDoc = `{
	"quote": {"last": 110, "close": 105},
	"model": {"fair": 109, "history": [104, 106]}
}`

func refFeedSpec() FeedSpec {
	return FeedSpec{
		Current:       "$.quote.last",
		Previous:      "$.quote.close",
		Model:         "$.model.fair",
		PreviousModel: "$.model.history[0]",
		Currency:      "USD",
	}
}

func TestFeedSpec_ExtractMark(t *testing.T) {
	var doc any
	if err := json.NewDecoder(strings.NewReader(refFeedDoc)).Decode(&doc); err != nil {
		t.Fatalf("decoding feed document: %v", err)
	}

	row, err := refFeedSpec().ExtractMark(doc)
	if err != nil {
		t.Fatalf("ExtractMark() error = %v", err)
	}

	if !row.Current.Equal(USD(110)) {
		t.Errorf("Current = %s, want %s", row.Current, USD(110))
	}
	if !row.Previous.Equal(USD(105)) {
		t.Errorf("Previous = %s, want %s", row.Previous, USD(105))
	}
	if !row.Model.Equal(USD(109)) {
		t.Errorf("Model = %s, want %s", row.Model, USD(109))
	}
	if !row.PreviousModel.Equal(USD(104)) {
		t.Errorf("PreviousModel = %s, want %s", row.PreviousModel, USD(104))
	}
}

func TestFeedSpec_ExtractMark_NotANumber(t *testing.T) {
	var doc any
	if err := json.NewDecoder(strings.NewReader(refFeedDoc)).Decode(&doc); err != nil {
		t.Fatalf("decoding feed document: %v", err)
	}

	spec := refFeedSpec()
	spec.Model = "$.model" // an object, not a number
	if _, err := spec.ExtractMark(doc); err == nil {
		t.Error("ExtractMark() should fail when the path yields a non-number")
	}
}

func TestFeedSpec_ExtractMark_BadPath(t *testing.T) {
	var doc any
	if err := json.NewDecoder(strings.NewReader(refFeedDoc)).Decode(&doc); err != nil {
		t.Fatalf("decoding feed document: %v", err)
	}

	spec := refFeedSpec()
	spec.Current = "$.quote.missing"
	if _, err := spec.ExtractMark(doc); err == nil {
		t.Error("ExtractMark() should fail on a path with no match")
	}
}
