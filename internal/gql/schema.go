package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/instansys/postserver/internal/posts"
	"github.com/instansys/postserver/internal/telemetry/metrics"
)

// NewSchema builds the blog post GraphQL schema and binds every
// operation to the given resolver. The contract (type names, operation
// names, input shapes) is frozen - generated clients depend on it.
func NewSchema(resolver *posts.Resolver, metricsManager *metrics.Manager) (graphql.Schema, error) {
	authorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Author",
		Fields: graphql.Fields{
			"name":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"avatar": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	blogPostType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BlogPost",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"content":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"author":    &graphql.Field{Type: graphql.NewNonNull(authorType)},
			"tags":      &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	createInputFields := func() graphql.InputObjectConfigFieldMap {
		return graphql.InputObjectConfigFieldMap{
			"title":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"author":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"tags":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
		}
	}

	createPostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   "CreatePostInput",
		Fields: createInputFields(),
	})

	// kept for backward compatibility with clients generated against the
	// old schema, same shape and same implementation as CreatePostInput
	createBlogPostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   "CreateBlogPostInput",
		Fields: createInputFields(),
	})

	updateBlogPostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateBlogPostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"tags":    &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"blogPosts": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(blogPostType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return resolver.ListPosts(p.Context)
				},
			},
			"blogPost": &graphql.Field{
				Type: blogPostType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					post, err := resolver.GetPost(p.Context, id)
					if err != nil {
						return nil, err
					}
					if post == nil {
						return nil, nil
					}
					return *post, nil
				},
			},
		},
	})

	createResolve := func(p graphql.ResolveParams) (interface{}, error) {
		input, err := decodeCreateInput(p.Args["input"])
		if err != nil {
			return nil, err
		}
		post, err := resolver.CreatePost(p.Context, input)
		if err != nil {
			return nil, err
		}
		metricsManager.CounterPostsCreated.Inc()
		return post, nil
	}

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createPost": &graphql.Field{
				Type: graphql.NewNonNull(blogPostType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createPostInput)},
				},
				Resolve: createResolve,
			},
			"createBlogPost": &graphql.Field{
				Type: graphql.NewNonNull(blogPostType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createBlogPostInput)},
				},
				Resolve:           createResolve,
				DeprecationReason: "Use createPost instead.",
			},
			"updateBlogPost": &graphql.Field{
				Type: graphql.NewNonNull(blogPostType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateBlogPostInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					input, err := decodeUpdateInput(p.Args["input"])
					if err != nil {
						return nil, err
					}
					return resolver.UpdatePost(p.Context, id, input)
				},
			},
			"deleteBlogPost": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					return resolver.DeletePost(p.Context, id)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// decodeCreateInput converts the loosely typed argument map coming out of
// the GraphQL executor into the typed input the resolver validates
func decodeCreateInput(arg interface{}) (posts.CreatePostInput, error) {
	raw, ok := arg.(map[string]interface{})
	if !ok {
		return posts.CreatePostInput{}, &posts.ValidationError{Message: "input object is required"}
	}

	var input posts.CreatePostInput
	if title, ok := raw["title"].(string); ok {
		input.Title = title
	}
	if content, ok := raw["content"].(string); ok {
		input.Content = content
	}
	if author, ok := raw["author"].(string); ok {
		input.Author = author
	}
	if tags, ok := raw["tags"].([]interface{}); ok {
		input.Tags = toStringSlice(tags)
	}
	return input, nil
}

func decodeUpdateInput(arg interface{}) (posts.UpdatePostInput, error) {
	raw, ok := arg.(map[string]interface{})
	if !ok {
		return posts.UpdatePostInput{}, &posts.ValidationError{Message: "input object is required"}
	}

	var input posts.UpdatePostInput
	if title, ok := raw["title"].(string); ok {
		input.Title = &title
	}
	if content, ok := raw["content"].(string); ok {
		input.Content = &content
	}
	if tags, ok := raw["tags"].([]interface{}); ok {
		tagList := toStringSlice(tags)
		input.Tags = &tagList
	}
	return input, nil
}

func toStringSlice(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
