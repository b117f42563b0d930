// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces (internal/services/interfaces.go)
//
//   - BookStore: create, read and soft delete books
//   - UserStore: member records keyed by email
//   - BorrowingStore: latest borrowing lookup and the open/close transitions
//   - ReportStore: borrowing queries behind the analytics reports
//
// ## Service Interfaces (internal/http/stores.go)
//
//   - BookManager, Lender, UserManager, ReportGenerator: what each controller
//     needs from the service layer
//
// ## Other
//
//   - PasswordHasher: password hashing (internal/auth)
//
// # Adding a New Report
//
//  1. Add the query to internal/database/borrowings and to ReportStore.
//
//  2. Add a method to AnalyticsService that picks a reports.DateFormatter:
//
//     func (s *AnalyticsService) ReturnsReport(input ReportInput) (*Report, error)
//
//  3. Expose it on ReportGenerator and register the route in router.go.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
