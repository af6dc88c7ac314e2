// Package timezone keeps every date the hotel handles in one location.
//
// Reservation and birth dates are entered and displayed as dd/mm/yyyy:
//
//	start, err := timezone.ParseDate("01/03/2024")
//	fmt.Println(timezone.FormatDate(start)) // 01/03/2024
//
// The location comes from APP_TIMEZONE (an IANA name such as
// "America/Sao_Paulo" or "UTC") and is loaded when the package is imported.
// An empty or unknown name falls back to UTC.
package timezone
