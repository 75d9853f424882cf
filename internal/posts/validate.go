package posts

import (
	"errors"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	titleMaxLen   = 100
	contentMinLen = 10
	contentMaxLen = 5000
	authorMaxLen  = 50
	tagMaxLen     = 20
	tagsMaxCount  = 10
)

type CreatePostInput struct {
	Title   string
	Content string
	Author  string
	Tags    []string
}

// Validate checks all field rules against the trimmed input values.
// All violated rules are collected into a single error message.
func (in CreatePostInput) Validate() error {
	trimmed := CreatePostInput{
		Title:   strings.TrimSpace(in.Title),
		Content: strings.TrimSpace(in.Content),
		Author:  strings.TrimSpace(in.Author),
		Tags:    in.Tags,
	}

	err := validation.ValidateStruct(&trimmed,
		validation.Field(&trimmed.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, titleMaxLen).Error("title must be at most 100 characters"),
		),
		validation.Field(&trimmed.Content,
			validation.Required.Error("content is required"),
			validation.RuneLength(contentMinLen, contentMaxLen).Error("content must be between 10 and 5000 characters"),
		),
		validation.Field(&trimmed.Author,
			validation.Required.Error("author is required"),
			validation.RuneLength(1, authorMaxLen).Error("author must be at most 50 characters"),
		),
		validation.Field(&trimmed.Tags,
			validation.Length(0, tagsMaxCount).Error("at most 10 tags are allowed"),
			validation.Each(validation.By(checkTag)),
		),
	)
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

// UpdatePostInput carries partial update semantics: a nil field was not
// present in the request and is left untouched
type UpdatePostInput struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// Validate checks only the fields present in the input
func (in UpdatePostInput) Validate() error {
	errs := validation.Errors{}

	if in.Title != nil {
		errs["title"] = validation.Validate(strings.TrimSpace(*in.Title),
			validation.Required.Error("title is required"),
			validation.RuneLength(1, titleMaxLen).Error("title must be at most 100 characters"),
		)
	}
	if in.Content != nil {
		errs["content"] = validation.Validate(strings.TrimSpace(*in.Content),
			validation.Required.Error("content is required"),
			validation.RuneLength(contentMinLen, contentMaxLen).Error("content must be between 10 and 5000 characters"),
		)
	}
	if in.Tags != nil {
		errs["tags"] = validation.Validate(*in.Tags,
			validation.Length(0, tagsMaxCount).Error("at most 10 tags are allowed"),
			validation.Each(validation.By(checkTag)),
		)
	}

	if err := errs.Filter(); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

func checkTag(value interface{}) error {
	tag, _ := value.(string)
	length := utf8.RuneCountInString(strings.TrimSpace(tag))
	if length < 1 || length > tagMaxLen {
		return errors.New("each tag must be between 1 and 20 characters")
	}
	return nil
}
