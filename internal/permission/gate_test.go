package permission_test

import (
	"errors"
	"testing"

	"github.com/protrack-dev/protrack/backend/internal/permission"
)

func TestCanViewAllows(t *testing.T) {
	if err := permission.CanView(true, "Manager's Project"); err != nil {
		t.Fatalf("CanView(true) = %v, want nil", err)
	}
}

func TestCanViewDenies(t *testing.T) {
	err := permission.CanView(false, "Manager's Project")
	if err == nil {
		t.Fatal("CanView(false) = nil, want error")
	}

	var forbidden *permission.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("error is %T, want *ForbiddenError", err)
	}
	if got, want := err.Error(), "cannot view Manager's Project"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestCanManageDenies(t *testing.T) {
	err := permission.CanManage(false, "Project's Task")
	if err == nil {
		t.Fatal("CanManage(false) = nil, want error")
	}
	if got, want := err.Error(), "cannot manage Project's Task"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestCanManageAllows(t *testing.T) {
	if err := permission.CanManage(true, "Project's Task"); err != nil {
		t.Fatalf("CanManage(true) = %v, want nil", err)
	}
}
