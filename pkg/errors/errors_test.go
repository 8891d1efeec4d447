// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, aggregation and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/makky/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "target_occupied",
			code:    errors.ErrTargetOccupied,
			message: "target occupied: /root/.vimrc",
			wantStr: "target occupied: /root/.vimrc",
		},
		{
			name:    "missing_target_line",
			code:    errors.ErrParseEntryTargetMissing,
			message: "parse entry target: missing",
			wantStr: "parse entry target: missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrTargetRootNotAbsolute, "target root is not an absolute path: %s", "makky")

	want := "target root is not an absolute path: makky"
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrUnlink, "unlink: /t/link")

		if err.Code != errors.ErrUnlink {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrUnlink)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "unlink: /t/link: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}

		if !stderrors.Is(err, baseErr) {
			t.Error("errors.Is() should find the wrapped error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrTargetOccupied, "target occupied").
		WithDetail("path", "/t/link")

	if err.Details["path"] != "/t/link" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/t/link")
	}

	details := errors.GetErrorDetails(errors.Wrap(err, errors.ErrLinkCreate, "create"))
	if details == nil {
		t.Fatal("GetErrorDetails() should return details of the outermost error")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrTargetOccupied, "occupied"),
			code:     errors.ErrTargetOccupied,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrTargetOccupied, "occupied"),
			code:     errors.ErrUnlink,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(errors.New(errors.ErrTargetOccupied, "occupied"), errors.ErrLinkCreate, "create"),
			code:     errors.ErrTargetOccupied,
			expected: true,
		},
		{
			name: "inside_aggregate",
			err: errors.NewAggregate(errors.ErrParseEntries, "parse entries", []error{
				errors.New(errors.ErrEntrySourceNotExists, "entry: source not exists: /a"),
			}),
			code:     errors.ErrEntrySourceNotExists,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrUnknown,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrUnknown,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	agg := errors.NewAggregate(errors.ErrParseEntries, "parse entries", []error{
		errors.New(errors.ErrEntryTargetDuplicate, "entry: target duplicate: /a -> b"),
	})

	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "makky_error",
			err:      errors.New(errors.ErrCreateSymlink, "create new symlink"),
			expected: errors.ErrCreateSymlink,
		},
		{
			name:     "aggregate_reports_its_own_code",
			err:      agg,
			expected: errors.ErrParseEntries,
		},
		{
			name:     "outermost_code_wins",
			err:      errors.Wrap(agg, errors.ErrLinkReadMetadata, "read metadata"),
			expected: errors.ErrLinkReadMetadata,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	t.Run("empty_returns_nil", func(t *testing.T) {
		if agg := errors.NewAggregate(errors.ErrParseEntries, "parse entries", nil); agg != nil {
			t.Error("NewAggregate() with no errors should return nil")
		}
	})

	t.Run("renders_every_error", func(t *testing.T) {
		agg := errors.NewAggregate(errors.ErrParseEntries, "parse entries", []error{
			errors.New(errors.ErrEntrySourceNotExists, "entry: source not exists: /a"),
			errors.New(errors.ErrEntryTargetDuplicate, "entry: target duplicate: /b -> t"),
		})

		want := "parse entries:\n\tentry: source not exists: /a\n\tentry: target duplicate: /b -> t"
		if got := agg.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}

		wrapped := errors.Wrap(agg, errors.ErrLinkReadMetadata, "link: read metadata")
		found, ok := errors.AsAggregate(wrapped)
		if !ok {
			t.Fatal("AsAggregate() should find the aggregate through a wrap")
		}
		if len(found.Errors) != 2 {
			t.Errorf("AsAggregate() errors = %d, want 2", len(found.Errors))
		}
	})
}
