package manifest

const (
	// RootMarker is the top-level directory that must exist before anything
	// is created. Its absence means the tool is not running at a project root.
	RootMarker = "lib"

	// ReservedPath is the application entry point. It is reported on but
	// never created.
	ReservedPath = "lib/main.dart"
)

// entries is the layout in processing order. Paths use forward slashes.
var entries = [...]string{
	// App configuration
	"lib/app/config/app_router.dart",
	"lib/app/config/app_theme.dart",

	// Models
	"lib/app/models/patient_model.dart",
	"lib/app/models/doctor_model.dart",
	"lib/app/models/product_model.dart",
	"lib/app/models/transaction_model.dart",

	// Services
	"lib/app/services/firestore_service.dart",

	// Shared widgets (kept by a marker file until real widgets land)
	"lib/app/widgets/.gitkeep",

	// Dashboard
	"lib/features/dashboard/screens/dashboard_screen.dart",

	// Patient
	"lib/features/patient/providers/patient_providers.dart",
	"lib/features/patient/screens/add_edit_patient_screen.dart",
	"lib/features/patient/screens/patient_list_screen.dart",

	// Doctor
	"lib/features/doctor/providers/doctor_providers.dart",
	"lib/features/doctor/screens/add_edit_doctor_screen.dart",
	"lib/features/doctor/screens/doctor_list_screen.dart",

	// Product
	"lib/features/product/providers/product_providers.dart",
	"lib/features/product/screens/add_edit_product_screen.dart",
	"lib/features/product/screens/product_list_screen.dart",

	// Transaction
	"lib/features/transaction/providers/transaction_providers.dart",
	"lib/features/transaction/screens/add_transaction_screen.dart",
	"lib/features/transaction/screens/transaction_list_screen.dart",
}

// Entries returns the layout paths in declared order. The returned slice is
// a copy; callers may modify it freely.
func Entries() []string {
	out := make([]string, len(entries))
	copy(out, entries[:])
	return out
}

// Len returns the number of layout entries.
func Len() int { return len(entries) }
