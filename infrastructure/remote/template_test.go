package remote

import (
	"testing"

	"webdrill/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   entities.Params
		want     string
	}{
		{
			name:     "no placeholders",
			template: "/status",
			params:   entities.Params{"sessionId": "abc"},
			want:     "/status",
		},
		{
			name:     "session and element",
			template: "/session/$sessionId/element/$id/click",
			params:   entities.Params{"sessionId": "abc", "id": "e1"},
			want:     "/session/abc/element/e1/click",
		},
		{
			name:     "braced syntax",
			template: "/session/${sessionId}/element/${id}/attribute/${name}",
			params:   entities.Params{"sessionId": "abc", "id": "e1", "name": "href"},
			want:     "/session/abc/element/e1/attribute/href",
		},
		{
			name:     "mixed syntaxes in template order",
			template: "/a/${first}/b/$second/c/${third}",
			params:   entities.Params{"first": "1", "second": "2", "third": "3"},
			want:     "/a/1/b/2/c/3",
		},
		{
			name:     "missing key becomes empty",
			template: "/session/$sessionId/element/$id/text",
			params:   entities.Params{"sessionId": "abc"},
			want:     "/session/abc/element//text",
		},
		{
			name:     "non-string value becomes empty",
			template: "/session/$sessionId/window/$windowHandle/size",
			params:   entities.Params{"sessionId": "abc", "windowHandle": 42},
			want:     "/session/abc/window//size",
		},
		{
			name:     "substituted values are not re-expanded",
			template: "/session/$sessionId/cookie/$name",
			params:   entities.Params{"sessionId": "abc", "name": "$sessionId"},
			want:     "/session/abc/cookie/$sessionId",
		},
		{
			name:     "nil params",
			template: "/session/$sessionId",
			params:   nil,
			want:     "/session/",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.template, tt.params))
		})
	}
}

func TestExpandPath_NoLiteralPlaceholderLeft(t *testing.T) {
	for _, cmd := range entities.AllCommands {
		_, template, err := Resolve(cmd)
		assert.NoError(t, err)
		got := ExpandPath(template, entities.Params{})
		assert.NotContains(t, got, "$", cmd)
	}
}
