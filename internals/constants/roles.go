package constants

import "fmt"

const (
	RoleClient = "client"
	RoleCoach  = "coach"
	RoleOwner  = "owner"
)

// Template pesan error role
const (
	ErrOnlyCoachesCanAccess = "❌ Hanya coach atau owner yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess  = "❌ Hanya owner yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorCoach(feature string) string {
	return fmt.Sprintf(ErrOnlyCoachesCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleClient,
		RoleCoach,
		RoleOwner,
	}

	CoachAndAbove = []string{
		RoleCoach,
		RoleOwner,
	}
)
