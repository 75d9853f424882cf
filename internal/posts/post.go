package posts

// UnknownAuthorName is used for legacy records persisted without an author.
const UnknownAuthorName = "Unknown"

// timestampFormat matches ISO 8601 with millisecond precision,
// so timestamps stay lexicographically sortable
const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type BlogPost struct {
	Id        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Author    Author   `json:"author"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// Normalized returns a copy of the post with fields missing from
// legacy records set to their defaults: reads never surface a post
// without an author, tags or content
func (p BlogPost) Normalized() BlogPost {
	if p.Author.Name == "" {
		p.Author = Author{Name: UnknownAuthorName, Avatar: ""}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}
