package sheet

import (
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"trims fields", "  a , b ,c  ", []string{"a", "b", "c"}},
		{"quoted comma", `"Hello, world",x`, []string{"Hello, world", "x"}},
		{"quotes dropped mid-field", `ab"c,d"e,f`, []string{"abc,de", "f"}},
		{"doubled quote is not an escape", `"say ""hi""",z`, []string{"say hi", "z"}},
		{"trailing delimiter", "a,", []string{"a", ""}},
		{"empty line", "", []string{""}},
		{"unterminated quote swallows rest", `"open,still,open`, []string{"open,still,open"}},
		{"unicode", "café,naïve", []string{"café", "naïve"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	text := "title, date ,description\n" +
		"Spring Open,2024-04-01,\"Swiss, 5 rounds\"\n" +
		"\n" +
		"   \n" +
		"Summer Cup,2024-07-01\n" +
		"Autumn,2024-10-01,desc,extra,values\n"

	got := Parse(text)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	want := []Record{
		{"title": "Spring Open", "date": "2024-04-01", "description": "Swiss, 5 rounds"},
		{"title": "Summer Cup", "date": "2024-07-01", "description": ""},
		{"title": "Autumn", "date": "2024-10-01", "description": "desc"},
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("record %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseTooFewLines(t *testing.T) {
	for _, text := range []string{"", "\n\n", "only,a,header\n", "  \nheader\n  \n"} {
		got := Parse(text)
		if got == nil {
			t.Errorf("Parse(%q) returned nil, want empty slice", text)
		}
		if len(got) != 0 {
			t.Errorf("Parse(%q) = %v, want empty", text, got)
		}
	}
}

func TestParseDuplicateHeadersLastWins(t *testing.T) {
	got := Parse("name,name\nfirst,second\n")
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0]["name"] != "second" {
		t.Errorf("name = %q, want %q", got[0]["name"], "second")
	}
	if len(got[0]) != 1 {
		t.Errorf("record has %d keys, want 1", len(got[0]))
	}
}

func TestParseCRLF(t *testing.T) {
	got := Parse("title,location\r\nDraft Night,Club Hall\r\n")
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Get("location") != "Club Hall" {
		t.Errorf("location = %q, want %q", got[0].Get("location"), "Club Hall")
	}
}

func TestHeaders(t *testing.T) {
	got := Headers("\n a ,b,  c\n1,2,3\n")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Headers = %q, want %q", got, want)
	}
	if Headers("") != nil {
		t.Error("Headers of empty text should be nil")
	}
}

func TestRecordAccessors(t *testing.T) {
	rec := Record{"features": " 540 cards ; ; peasant;  ", "title": "Vintage"}

	if rec.Get("missing") != "" {
		t.Error("Get on missing key should be empty")
	}
	if !rec.Has("title") || rec.Has("missing") {
		t.Error("Has mismatch")
	}

	want := []string{"540 cards", "peasant"}
	if got := rec.List("features"); !reflect.DeepEqual(got, want) {
		t.Errorf("List = %q, want %q", got, want)
	}
	if rec.List("missing") != nil {
		t.Error("List on missing key should be nil")
	}
	if got := (Record{"features": " ;; "}).List("features"); got != nil {
		t.Errorf("List of separators only = %q, want nil", got)
	}

	var nilRec Record
	if nilRec.Get("x") != "" {
		t.Error("nil record Get should be empty")
	}
}
