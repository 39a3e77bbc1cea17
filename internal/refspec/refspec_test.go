package refspec

import (
	"reflect"
	"strings"
	"testing"
)

func TestExpandReviewers(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		want    []string
		wantErr bool
	}{
		{
			name:   "comma joined token with mixed domains",
			tokens: []string{"a,b@x.com"},
			want:   []string{"a@google.com", "b@x.com"},
		},
		{
			name:   "repeated tokens",
			tokens: []string{"adg", "rsc@swtch.com"},
			want:   []string{"adg@google.com", "rsc@swtch.com"},
		},
		{
			name:   "empty entries skipped",
			tokens: []string{"", "a,,b"},
			want:   []string{"a@google.com", "b@google.com"},
		},
		{
			name:   "no reviewers",
			tokens: nil,
			want:   nil,
		},
		{
			name:    "invalid address",
			tokens:  []string{"not a reviewer"},
			wantErr: true,
		},
		{
			name:    "leading dot rejected",
			tokens:  []string{".adg"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandReviewers(tt.tokens, "google.com")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExpandReviewers(%v) = %v, expected error", tt.tokens, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExpandReviewers(%v): %v", tt.tokens, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandReviewers(%v) = %v, expected %v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestAnnotation(t *testing.T) {
	tests := []struct {
		name   string
		emails []string
		want   string
	}{
		{name: "none", emails: nil, want: ""},
		{name: "one", emails: []string{"a@google.com"}, want: "%r=a@google.com"},
		{name: "two", emails: []string{"a@google.com", "b@x.com"}, want: "%r=a@google.com,r=b@x.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Annotation(tt.emails); got != tt.want {
				t.Errorf("Annotation(%v) = %q, expected %q", tt.emails, got, tt.want)
			}
		})
	}
}

func TestDestination(t *testing.T) {
	got, err := Destination("refs/heads/main")
	if err != nil {
		t.Fatalf("Destination: %v", err)
	}
	if got != "refs/for/main" {
		t.Errorf("Destination = %q, expected %q", got, "refs/for/main")
	}
}

func TestDestination_BadPrefixIsInternalError(t *testing.T) {
	_, err := Destination("main")
	if err == nil {
		t.Fatal("Destination accepted an unqualified branch")
	}
	if !strings.Contains(err.Error(), "internal error") {
		t.Errorf("error = %v, expected internal error", err)
	}
}

func TestFormat(t *testing.T) {
	got := Format("HEAD", "refs/for/main", "%r=a@google.com")
	if got != "HEAD:refs/for/main%r=a@google.com" {
		t.Errorf("Format = %q", got)
	}
}
