package bot

import (
	"testing"

	"github.com/soralabs/warehouse-bot/internal/domain/users"
)

func TestDecide(t *testing.T) {
	const principal = int64(100)

	tests := []struct {
		name      string
		u         *users.User
		needAdmin bool
		want      decision
	}{
		{"незарегистрированный", nil, false, deniedUnregistered},
		{"заблокированный", &users.User{ID: 1, IsBanned: true, IsApproved: true}, false, deniedBanned},
		{"неодобренный", &users.User{ID: 1}, false, deniedUnapproved},
		{"одобренный", &users.User{ID: 1, IsApproved: true}, false, admitted},
		{"одобренный без прав админа", &users.User{ID: 1, IsApproved: true}, true, deniedNotAdmin},
		{"одобренный админ", &users.User{ID: 1, IsApproved: true, IsAdmin: true}, true, admitted},
		{"бан важнее одобрения", &users.User{ID: 1, IsBanned: true, IsApproved: true, IsAdmin: true}, true, deniedBanned},
		// главный администратор проходит при любых флагах в БД
		{"главный админ без флагов", &users.User{ID: principal}, true, admitted},
		{"главный админ заблокирован в БД", &users.User{ID: principal, IsBanned: true}, true, admitted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decide(tt.u, principal, tt.needAdmin); got != tt.want {
				t.Errorf("decide = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDenialTextCoversDenials(t *testing.T) {
	for _, d := range []decision{deniedUnregistered, deniedBanned, deniedUnapproved, deniedNotAdmin} {
		if denialText(d) == "" {
			t.Errorf("denialText(%v) is empty", d)
		}
	}
}
