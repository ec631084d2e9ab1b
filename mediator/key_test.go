package mediator_test

import (
	"reflect"
	"testing"

	"github.com/kbukum/mediator/mediator"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name   string
		key    mediator.Key
		want   string
		isVoid bool
	}{
		{"typed", mediator.KeyFor[Echo, string](), "mediator_test.Echo -> string", false},
		{"void", mediator.VoidKeyFor[Ping](), "mediator_test.Ping", true},
		{"pointer", mediator.KeyFor[*PtrReq, string](), "*mediator_test.PtrReq -> string", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.key.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
			if tc.key.IsVoid() != tc.isVoid {
				t.Errorf("IsVoid() = %v, want %v", tc.key.IsVoid(), tc.isVoid)
			}
		})
	}
}

func TestKeyOf_MatchesKeyFor(t *testing.T) {
	if mediator.KeyOf[string](Echo{}) != mediator.KeyFor[Echo, string]() {
		t.Error("KeyOf and KeyFor disagree for Echo")
	}
	if mediator.VoidKeyOf(Ping{}) != mediator.VoidKeyFor[Ping]() {
		t.Error("VoidKeyOf and VoidKeyFor disagree for Ping")
	}
}

func TestTypeName(t *testing.T) {
	if got := mediator.TypeName(nil); got != "<nil>" {
		t.Errorf("TypeName(nil) = %q", got)
	}
	if got := mediator.TypeName(reflect.TypeFor[int]()); got != "int" {
		t.Errorf("TypeName(int) = %q", got)
	}
	if got := mediator.RequestName(Add{}); got != "mediator_test.Add" {
		t.Errorf("RequestName = %q", got)
	}
}
