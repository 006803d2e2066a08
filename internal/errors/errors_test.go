package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "structure mismatch",
			code:    "H001",
			wantMsg: "Structure mismatch: element tag differs",
			wantCat: CategoryHydration,
		},
		{
			name:    "invalid handler",
			code:    "H003",
			wantMsg: "Invalid event handler",
			wantCat: CategoryHydration,
		},
		{
			name:    "delta error",
			code:    "D001",
			wantMsg: "Invalid delta tree",
			wantCat: CategoryDelta,
		},
		{
			name:    "unknown error code",
			code:    "H999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Code != tt.code {
				t.Errorf("Code = %v, want %v", err.Code, tt.code)
			}
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %v, want %v", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %v, want %v", err.Category, tt.wantCat)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryConfig, "bad level %q", "loud")
	if err.Message != `bad level "loud"` {
		t.Errorf("Message = %v", err.Message)
	}
	if err.Code != "" {
		t.Errorf("Code = %v, want empty", err.Code)
	}
}

func TestError_Error(t *testing.T) {
	err := New("H003").WithTag("button").WithDetail(`prop "onclick" holds string`)
	want := `H003: Invalid event handler <button>: prop "onclick" holds string`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_IsByCode(t *testing.T) {
	err := fmt.Errorf("branch failed: %w", New("H004").WithDetail("chan int"))

	if !stderrors.Is(err, New("H004")) {
		t.Error("errors.Is should match on code through wrapping")
	}
	if stderrors.Is(err, New("H003")) {
		t.Error("errors.Is should not match a different code")
	}
	if stderrors.Is(err, &Error{}) {
		t.Error("errors.Is should not match an empty code")
	}
}

func TestError_Wrap(t *testing.T) {
	cause := stderrors.New("unexpected EOF")
	err := New("D001").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause should be reachable")
	}
	if !strings.HasSuffix(err.Error(), "unexpected EOF") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "D001") != nil {
		t.Error("FromError(nil) should be nil")
	}

	he := New("H005")
	if FromError(he, "D001") != he {
		t.Error("FromError should pass an *Error through")
	}

	wrapped := FromError(stderrors.New("boom"), "C002")
	if wrapped.Code != "C002" {
		t.Errorf("Code = %v, want C002", wrapped.Code)
	}
}

func TestCodeOf(t *testing.T) {
	err := fmt.Errorf("outer: %w", New("H003"))
	if got := CodeOf(err); got != "H003" {
		t.Errorf("CodeOf = %q, want H003", got)
	}
	if got := CodeOf(stderrors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("H003").WithTag("button").WithDetail("prop onclick holds int").Format()

	for _, want := range []string{
		"ERROR H003: Invalid event handler",
		"at <button>",
		"prop onclick holds int",
		"Hint: Event props",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestCodes(t *testing.T) {
	codes := Codes()
	if len(codes) == 0 {
		t.Fatal("expected registered codes")
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Errorf("codes not sorted: %v", codes)
		}
	}
	if _, ok := Lookup("H002"); !ok {
		t.Error("H002 should be registered")
	}
}

func TestRegister(t *testing.T) {
	Register("X001", Template{Category: CategoryDelta, Message: "custom"})
	defer delete(registry, "X001")

	if New("X001").Message != "custom" {
		t.Error("registered template not used")
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 9)
	want := []string{"one two", "three", "four five", "six"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("wrapText = %v, want %v", lines, want)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}
