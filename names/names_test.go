package names

import "testing"

func TestFormatters(t *testing.T) {
	tests := []struct {
		accessor string
		camel    string
		snake    string
		kebab    string
	}{
		{"Title", "title", "title", "title"},
		{"PublishDate", "publishDate", "publish_date", "publish-date"},
		{"ISBN", "isbn", "isbn", "isbn"},
		{"UserID", "userID", "user_id", "user-id"},
		{"HTTPServer", "httpServer", "http_server", "http-server"},
		{"UTF8String", "utf8String", "utf8_string", "utf8-string"},
		{"A", "a", "a", "a"},
		{"", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.accessor, func(t *testing.T) {
			if got := CamelCase(tt.accessor); got != tt.camel {
				t.Errorf("CamelCase(%q) = %q, expected %q", tt.accessor, got, tt.camel)
			}
			if got := SnakeCase(tt.accessor); got != tt.snake {
				t.Errorf("SnakeCase(%q) = %q, expected %q", tt.accessor, got, tt.snake)
			}
			if got := KebabCase(tt.accessor); got != tt.kebab {
				t.Errorf("KebabCase(%q) = %q, expected %q", tt.accessor, got, tt.kebab)
			}
			if got := PascalCase(tt.accessor); got != tt.accessor {
				t.Errorf("PascalCase(%q) = %q, expected identity", tt.accessor, got)
			}
		})
	}
}
