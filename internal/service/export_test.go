package service

import (
	"testing"

	"github.com/haierkeys/link-store-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLinks(t *testing.T) {
	tests := []struct {
		name  string
		links []domain.Link
		want  string
	}{
		{"nil", nil, `[]`},
		{"empty", []domain.Link{}, `[]`},
		{
			"html is not escaped",
			[]domain.Link{{Title: "A & B <tags>", URL: "https://x.test/?a=1&b=2"}},
			"[\n  {\n    \"title\": \"A & B <tags>\",\n    \"url\": \"https://x.test/?a=1&b=2\"\n  }\n]",
		},
		{
			"two records keep order",
			[]domain.Link{{Title: "b", URL: "http://b"}, {Title: "a", URL: "https://a"}},
			"[\n  {\n    \"title\": \"b\",\n    \"url\": \"http://b\"\n  },\n  {\n    \"title\": \"a\",\n    \"url\": \"https://a\"\n  }\n]",
		},
		{
			"quotes and unicode",
			[]domain.Link{{Title: `say "hi" 你好`, URL: "https://例子.测试"}},
			"[\n  {\n    \"title\": \"say \\\"hi\\\" 你好\",\n    \"url\": \"https://例子.测试\"\n  }\n]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeLinks(tt.links)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecodeLinks(t *testing.T) {
	links, err := DecodeLinks([]byte("  \n[{\"title\":\"a\",\"url\":\"https://a\",\"extra\":1}]\n"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Link{{Title: "a", URL: "https://a"}}, links)

	links, err = DecodeLinks([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)

	links, err = DecodeLinks([]byte("\xEF\xBB\xBF[{\"title\":\"b\",\"url\":\"http://b\"}]"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Link{{Title: "b", URL: "http://b"}}, links)

	_, err = DecodeLinks([]byte(`"links"`))
	assert.Error(t, err)
}
