package report

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleReport = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>
  nightly run
</title><style>body{}</style></head>
<body>
<section id="summary" class="summary" data-outcome="Failed">
  <table>
    <tr><th>Total</th><th>Passed</th><th>Failed</th><th>Not executed</th></tr>
    <tr>
      <td id="total">3</td>
      <td id="passed" class="passed">1</td>
      <td id="failed" class="failed">1</td>
      <td id="notexecuted" class="skipped">1</td>
    </tr>
  </table>
</section>
<section id="results"><table><tbody>
  <tr class="result failed"><td class="outcome">Failed</td><td class="name">Divide_ByZero</td></tr>
  <tr id="r1" class="details hidden"><td>boom</td></tr>
  <tr class="result passed"><td class="outcome">Passed</td><td class="name">Add_Works</td></tr>
  <tr class="result skipped"><td class="outcome">NotExecuted</td><td class="name">Slow_Test</td></tr>
</tbody></table></section>
</body>
</html>`

func TestInspect(t *testing.T) {
	t.Parallel()

	got, err := Inspect([]byte(sampleReport))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	want := &Summary{
		Title:       "nightly run",
		Outcome:     "Failed",
		Total:       3,
		Passed:      1,
		Failed:      1,
		NotExecuted: 1,
		Results:     3,
		FailedTests: []string{"Divide_ByZero"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Inspect() = %+v, want %+v", got, want)
	}
}

func TestInspect_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		wantErr error
	}{
		{
			name:    "no summary section",
			html:    `<html><body><p>hello</p></body></html>`,
			wantErr: ErrNotAReport,
		},
		{
			name:    "non numeric counter",
			html:    `<section id="summary"><table><tr><td id="total">many</td></tr></table></section>`,
			wantErr: ErrInvalidCounter,
		},
		{
			name:    "negative counter",
			html:    `<section id="summary"><table><tr><td id="failed">-1</td></tr></table></section>`,
			wantErr: ErrInvalidCounter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Inspect([]byte(tt.html))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Inspect() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestInspect_MissingCountersAreZero(t *testing.T) {
	t.Parallel()

	got, err := Inspect([]byte(`<section id="summary"><table><tr><td id="total"></td></tr></table></section>`))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if got.Total != 0 || got.Passed != 0 || got.Failed != 0 || got.NotExecuted != 0 {
		t.Errorf("Inspect() counters = %+v, want all zero", got)
	}
	if got.FailedTests != nil {
		t.Errorf("FailedTests = %v, want nil", got.FailedTests)
	}
}

func TestInspectFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.trx.html")
	if err := os.WriteFile(path, []byte(sampleReport), 0644); err != nil {
		t.Fatalf("writing report: %v", err)
	}

	got, err := InspectFile(path)
	if err != nil {
		t.Fatalf("InspectFile() error = %v", err)
	}
	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}

	if _, err := InspectFile(filepath.Join(t.TempDir(), "missing.html")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("InspectFile(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestSummary_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		summary Summary
		want    string
	}{
		{
			name:    "full",
			summary: Summary{Title: "nightly", Outcome: "Completed", Total: 2, Passed: 2},
			want:    "nightly: 2 total, 2 passed, 0 failed, 0 not executed (Completed)",
		},
		{
			name:    "bare",
			summary: Summary{Total: 1, Failed: 1},
			want:    "1 total, 0 passed, 1 failed, 0 not executed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.summary.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
