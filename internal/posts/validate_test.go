package posts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateInput() CreatePostInput {
	return CreatePostInput{
		Title:   "Hello",
		Content: "This is long enough content",
		Author:  "Alice",
		Tags:    []string{"go", "blog"},
	}
}

func TestCreatePostInput_Validate(t *testing.T) {
	for caseName, testCase := range map[string]struct {
		mutate  func(in *CreatePostInput)
		wantErr bool
	}{
		"valid": {
			mutate:  func(in *CreatePostInput) {},
			wantErr: false,
		},
		"title empty": {
			mutate:  func(in *CreatePostInput) { in.Title = "" },
			wantErr: true,
		},
		"title only whitespace": {
			mutate:  func(in *CreatePostInput) { in.Title = "   " },
			wantErr: true,
		},
		"title at max length": {
			mutate:  func(in *CreatePostInput) { in.Title = strings.Repeat("a", 100) },
			wantErr: false,
		},
		"title too long": {
			mutate:  func(in *CreatePostInput) { in.Title = strings.Repeat("a", 101) },
			wantErr: true,
		},
		"content empty": {
			mutate:  func(in *CreatePostInput) { in.Content = "" },
			wantErr: true,
		},
		"content too short": {
			mutate:  func(in *CreatePostInput) { in.Content = strings.Repeat("c", 9) },
			wantErr: true,
		},
		"content at min length": {
			mutate:  func(in *CreatePostInput) { in.Content = strings.Repeat("c", 10) },
			wantErr: false,
		},
		"content at max length": {
			mutate:  func(in *CreatePostInput) { in.Content = strings.Repeat("c", 5000) },
			wantErr: false,
		},
		"content too long": {
			mutate:  func(in *CreatePostInput) { in.Content = strings.Repeat("c", 5001) },
			wantErr: true,
		},
		"author empty": {
			mutate:  func(in *CreatePostInput) { in.Author = "" },
			wantErr: true,
		},
		"author at max length": {
			mutate:  func(in *CreatePostInput) { in.Author = strings.Repeat("a", 50) },
			wantErr: false,
		},
		"author too long": {
			mutate:  func(in *CreatePostInput) { in.Author = strings.Repeat("a", 51) },
			wantErr: true,
		},
		"no tags": {
			mutate:  func(in *CreatePostInput) { in.Tags = nil },
			wantErr: false,
		},
		"ten tags": {
			mutate: func(in *CreatePostInput) {
				in.Tags = make([]string, 10)
				for i := range in.Tags {
					in.Tags[i] = "tag"
				}
			},
			wantErr: false,
		},
		"eleven tags": {
			mutate: func(in *CreatePostInput) {
				in.Tags = make([]string, 11)
				for i := range in.Tags {
					in.Tags[i] = "tag"
				}
			},
			wantErr: true,
		},
		"tag at max length": {
			mutate:  func(in *CreatePostInput) { in.Tags = []string{strings.Repeat("t", 20)} },
			wantErr: false,
		},
		"tag too long": {
			mutate:  func(in *CreatePostInput) { in.Tags = []string{strings.Repeat("t", 21)} },
			wantErr: true,
		},
		"tag empty after trim": {
			mutate:  func(in *CreatePostInput) { in.Tags = []string{"  "} },
			wantErr: true,
		},
	} {
		t.Run(caseName, func(t *testing.T) {
			input := validCreateInput()
			testCase.mutate(&input)

			err := input.Validate()
			if testCase.wantErr {
				require.Error(t, err)
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.NotEmpty(t, validationErr.Message)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUpdatePostInput_Validate(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	tagsPtr := func(tags ...string) *[]string { return &tags }

	for caseName, testCase := range map[string]struct {
		input   UpdatePostInput
		wantErr bool
	}{
		"all fields absent": {
			input:   UpdatePostInput{},
			wantErr: false,
		},
		"valid title only": {
			input:   UpdatePostInput{Title: strPtr("New title")},
			wantErr: false,
		},
		"empty title": {
			input:   UpdatePostInput{Title: strPtr("  ")},
			wantErr: true,
		},
		"title too long": {
			input:   UpdatePostInput{Title: strPtr(strings.Repeat("a", 101))},
			wantErr: true,
		},
		"valid content only": {
			input:   UpdatePostInput{Content: strPtr("updated content here")},
			wantErr: false,
		},
		"content too short": {
			input:   UpdatePostInput{Content: strPtr("short")},
			wantErr: true,
		},
		"tags explicitly cleared": {
			input:   UpdatePostInput{Tags: tagsPtr()},
			wantErr: false,
		},
		"tag too long": {
			input:   UpdatePostInput{Tags: tagsPtr(strings.Repeat("t", 21))},
			wantErr: true,
		},
		"too many tags": {
			input: UpdatePostInput{Tags: tagsPtr(
				"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9", "t10", "t11",
			)},
			wantErr: true,
		},
	} {
		t.Run(caseName, func(t *testing.T) {
			err := testCase.input.Validate()
			if testCase.wantErr {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
