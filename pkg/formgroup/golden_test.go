package formgroup_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formgroup/pkg/formgroup"
	"github.com/goliatone/go-formgroup/pkg/model"
	"github.com/goliatone/go-formgroup/pkg/testsupport"
)

func TestRenderMatchesGolden(t *testing.T) {
	cases := []struct {
		golden string
		id     string
		props  model.Props
	}{
		{
			golden: "text_invalid.golden.html",
			id:     "fg-email",
			props: model.Props{
				Name:            "email",
				Label:           "Email",
				Model:           model.String(""),
				InvalidFeedback: "Email is required",
				Classes:         "wide",
				Attrs: model.Attrs{
					"required":    model.AttrBool(true),
					"placeholder": model.AttrString("you@example.com"),
				},
				Data: model.Dataset{"field": "email"},
			},
		},
		{
			golden: "select_valid.golden.html",
			id:     "fg-plan",
			props: model.Props{
				Name:          "plan",
				Type:          model.TypeSelect,
				Label:         "Plan",
				Model:         model.String("pro"),
				ValidFeedback: "Looks good",
				Options: []model.SelectOption{
					{Value: "free", Label: "Free"},
					{Value: "pro", Label: "Pro"},
				},
			},
		},
		{
			golden: "checkbox_checked.golden.html",
			id:     "fg-news",
			props: model.Props{
				Name:  "newsletter",
				Type:  model.TypeCheckbox,
				Label: "Subscribe",
				Model: model.Bool(true),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.golden, func(t *testing.T) {
			out, err := formgroup.Render(testsupport.Context(), tc.props, formgroup.WithID(tc.id))
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			got := strings.TrimSpace(string(out)) + "\n"

			path := filepath.Join("testdata", tc.golden)
			if testsupport.WriteMaybeGolden(t, path, []byte(got)) {
				return
			}
			want := testsupport.MustReadGoldenString(t, path)
			if diff := testsupport.CompareGolden(want, got); diff != "" {
				t.Fatalf("markup mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
