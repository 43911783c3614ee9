package marketfolio

import "testing"

func TestEvaluateGuard(t *testing.T) {
	tests := []struct {
		name     string
		session  Session
		ownerID  int
		want     GuardAction
		wantPath string
		wantAuth bool
	}{
		{
			name:     "logged out goes to landing",
			session:  Session{},
			ownerID:  7,
			want:     RedirectLanding,
			wantPath: "/",
			wantAuth: true,
		},
		{
			name:    "admin enters anywhere",
			session: Session{Token: "t", Role: RoleAdmin, UserID: 1},
			ownerID: 99,
			want:    Allow,
		},
		{
			name:    "user enters own area",
			session: Session{Token: "t", Role: RoleUser, UserID: 7},
			ownerID: 7,
			want:    Allow,
		},
		{
			name:     "user redirected to own area",
			session:  Session{Token: "t", Role: RoleUser, UserID: 7},
			ownerID:  9,
			want:     RedirectOwnArea,
			wantPath: "/userPrivate/7",
		},
		{
			name:     "unknown role treated as logged out",
			session:  Session{Token: "t", Role: Role("root"), UserID: 7},
			ownerID:  7,
			want:     RedirectLanding,
			wantPath: "/",
			wantAuth: true,
		},
		{
			name:     "empty role treated as logged out",
			session:  Session{Token: "t", Role: "", UserID: 7},
			ownerID:  7,
			want:     RedirectLanding,
			wantPath: "/",
			wantAuth: true,
		},
		{
			name:     "role without token means logged out",
			session:  Session{Role: RoleAdmin, UserID: 1},
			ownerID:  1,
			want:     RedirectLanding,
			wantPath: "/",
			wantAuth: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := EvaluateGuard(tc.session, tc.ownerID)
			if d.Action != tc.want {
				t.Fatalf("action = %v, want %v", d.Action, tc.want)
			}
			if d.Path != tc.wantPath {
				t.Errorf("path = %q, want %q", d.Path, tc.wantPath)
			}
			if d.AuthRequired != tc.wantAuth {
				t.Errorf("authRequired = %v, want %v", d.AuthRequired, tc.wantAuth)
			}
		})
	}
}
