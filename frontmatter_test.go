package md2site

import "testing"

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantMeta Meta
		wantBody string
	}{
		{
			name:     "no front matter",
			input:    "# Title\n\nBody text.",
			wantMeta: Meta{},
			wantBody: "# Title\n\nBody text.",
		},
		{
			name:     "yaml block",
			input:    "---\ntitle: Hello\ndate: 2024-03-01\nsummary: short\nstatus: draft\n---\nBody.",
			wantMeta: Meta{Title: "Hello", Date: "2024-03-01", Summary: "short", Status: "draft"},
			wantBody: "Body.",
		},
		{
			name:     "quoted yaml values",
			input:    "---\ntitle: \"Quoted: title\"\n---\nBody.",
			wantMeta: Meta{Title: "Quoted: title"},
			wantBody: "Body.",
		},
		{
			name:     "empty block",
			input:    "---\n---\nBody.",
			wantMeta: Meta{},
			wantBody: "Body.",
		},
		{
			name:     "unclosed delimiter is not front matter",
			input:    "---\ntitle: Hello\nBody without closing fence.",
			wantMeta: Meta{},
			wantBody: "---\ntitle: Hello\nBody without closing fence.",
		},
		{
			name:     "delimiter mid-document is not front matter",
			input:    "Intro.\n---\ntitle: Hello\n---\n",
			wantMeta: Meta{},
			wantBody: "Intro.\n---\ntitle: Hello\n---\n",
		},
		{
			name:     "crlf input",
			input:    "---\r\ntitle: Windows\r\n---\r\nBody.",
			wantMeta: Meta{Title: "Windows"},
			wantBody: "Body.",
		},
		{
			name:     "invalid yaml falls back to line scanner",
			input:    "---\n{broken\ntitle: Legacy Title\nDate: 2019/05/04\n---\nBody.",
			wantMeta: Meta{Title: "Legacy Title", Date: "2019/05/04"},
			wantBody: "Body.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			meta, body := SplitFrontMatter(tt.input)
			if meta != tt.wantMeta {
				t.Errorf("meta = %+v, want %+v", meta, tt.wantMeta)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestScanMetaLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block string
		want  Meta
	}{
		{
			name:  "keys lowercased and quotes stripped",
			block: "Title: 'My Post'\nSTATUS: \"Draft\"",
			want:  Meta{Title: "My Post", Status: "Draft"},
		},
		{
			name:  "comments and unknown keys ignored",
			block: "# comment\nauthor: someone\ntitle: Kept",
			want:  Meta{Title: "Kept"},
		},
		{
			name:  "lines without a colon skipped",
			block: "not a pair\nsummary: works",
			want:  Meta{Summary: "works"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := scanMetaLines(tt.block); got != tt.want {
				t.Errorf("scanMetaLines() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
