package handlers

import (
	"testing"

	"fixify/utils"
)

func TestRoomAllowed(t *testing.T) {
	cases := []struct {
		name string
		room string
		role string
		id   string
		want bool
	}{
		{"user in own conversation", "chat:u1:p1", utils.RoleUser, "u1", true},
		{"provider in own conversation", "chat:u1:p1", utils.RoleProvider, "p1", true},
		{"user in foreign conversation", "chat:u1:p1", utils.RoleUser, "u2", false},
		{"provider on the user side", "chat:p1:u1", utils.RoleProvider, "u1", false},
		{"own notification stream", "notify:user:u1", utils.RoleUser, "u1", true},
		{"foreign notification stream", "notify:user:u2", utils.RoleUser, "u1", false},
		{"role mismatch on notifications", "notify:provider:u1", utils.RoleUser, "u1", false},
		{"admin has no rooms", "chat:u1:p1", utils.RoleAdmin, "a1", false},
		{"malformed room", "chat:u1", utils.RoleUser, "u1", false},
		{"unknown prefix", "video:u1:p1", utils.RoleUser, "u1", false},
	}

	for _, tc := range cases {
		if got := roomAllowed(tc.room, tc.role, tc.id); got != tc.want {
			t.Errorf("%s: roomAllowed(%q, %s, %s) = %v, want %v",
				tc.name, tc.room, tc.role, tc.id, got, tc.want)
		}
	}
}
