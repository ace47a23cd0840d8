package testsupport

import "testing"

func TestDocumentSelectors(t *testing.T) {
	doc := ParseHTML(t, []byte(`<div class="form-group"><label for="a">Name</label><input type="date" id="a" class="form-control is-valid" required><div class="invalid-feedback">Bad</div></div>`))

	if !doc.Exists("input[type='date']") {
		t.Fatalf("expected date input")
	}
	if doc.Exists("input[type='text']") {
		t.Fatalf("unexpected text input match")
	}
	if !doc.Exists("input.form-control.is-valid[required]") {
		t.Fatalf("expected compound selector to match")
	}
	if got := doc.MustFind(t, ".invalid-feedback").Text(); got != "Bad" {
		t.Fatalf("unexpected feedback text %q", got)
	}
	label := doc.MustFind(t, "label")
	if forAttr, _ := label.Attr("for"); forAttr != "a" {
		t.Fatalf("unexpected for attr %q", forAttr)
	}
	if len(doc.FindAll("div")) != 2 {
		t.Fatalf("expected two div elements")
	}
}
