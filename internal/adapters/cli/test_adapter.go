package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/ngfc/internal/ports/primary"
)

// TestAdapter translates the unit-test and harness commands to TestService calls.
type TestAdapter struct {
	service primary.TestService
	out     io.Writer
}

// NewTestAdapter creates a new TestAdapter with the given service.
func NewTestAdapter(service primary.TestService, out io.Writer) *TestAdapter {
	return &TestAdapter{
		service: service,
		out:     out,
	}
}

// UnitTest creates the unit test for a source file.
func (a *TestAdapter) UnitTest(ctx context.Context, req primary.CreateTestRequest) (*primary.CreateTestResponse, error) {
	resp, err := a.service.CreateUnitTest(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.HarnessPath != "" {
		fmt.Fprintf(a.out, "%s Created harness %s\n", color.New(color.FgGreen).Sprint("✓"), resp.HarnessPath)
	}
	a.printCreated("unit test", resp)
	return resp, nil
}

// Harness creates the harness for a component.
func (a *TestAdapter) Harness(ctx context.Context, req primary.CreateTestRequest) (*primary.CreateTestResponse, error) {
	resp, err := a.service.CreateHarness(ctx, req)
	if err != nil {
		return nil, err
	}

	a.printCreated("harness", resp)
	return resp, nil
}

func (a *TestAdapter) printCreated(what string, resp *primary.CreateTestResponse) {
	fmt.Fprintf(a.out, "%s Created %s %s\n", color.New(color.FgGreen).Sprint("✓"), what, resp.TestPath)
	if resp.ClassName != "" {
		fmt.Fprintf(a.out, "  class:    %s\n", resp.ClassName)
	}
	fmt.Fprintf(a.out, "  template: %s\n", resp.Template)
	printWarnings(a.out, resp.Warnings)
}
