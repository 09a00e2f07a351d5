package primary

import "context"

// TestService defines the primary port for generating unit tests and harnesses.
type TestService interface {
	// CreateUnitTest writes <stem>.spec.ts next to a source file. Component tests whose
	// template uses a harness create the harness first when it is missing.
	CreateUnitTest(ctx context.Context, req CreateTestRequest) (*CreateTestResponse, error)

	// CreateHarness writes <stem>.test.ts next to a component.
	CreateHarness(ctx context.Context, req CreateTestRequest) (*CreateTestResponse, error)
}

// CreateTestRequest contains parameters for test generation.
type CreateTestRequest struct {
	SourcePath string // Required; for harnesses any *.component.* file
	Open       bool
}

// CreateTestResponse contains the result of test generation.
type CreateTestResponse struct {
	ClassName   string
	Template    string // Template location that was rendered
	TestPath    string
	HarnessPath string // Harness written along with a unit test, if any
	Warnings    []string
}
