package transform

import "context"

const identityXSL = `<?xml version="1.0"?>
<xsl:stylesheet version="1.0" xmlns:xsl="http://www.w3.org/1999/XSL/Transform">
  <xsl:output method="html"/>
  <xsl:template match="/">
    <html><body><p><xsl:value-of select="/run/@name"/></p></body></html>
  </xsl:template>
</xsl:stylesheet>`

const sampleXML = `<?xml version="1.0"?><run name="nightly"/>`

// stubStylesheet returns canned output and records its input.
type stubStylesheet struct {
	out    []byte
	err    error
	gotXML []byte
	closed bool
}

func (s *stubStylesheet) Transform(_ context.Context, xml []byte) ([]byte, error) {
	s.gotXML = xml
	return s.out, s.err
}

func (s *stubStylesheet) Close() error {
	s.closed = true
	return nil
}

// fakeExitError mimics *exec.ExitError.
type fakeExitError struct {
	code int
}

func (e *fakeExitError) Error() string { return "exit status" }
func (e *fakeExitError) ExitCode() int { return e.code }

// fakeRunner returns scripted results, one per call; the last one repeats.
type fakeRunner struct {
	results []fakeResult
	calls   [][]string
}

type fakeResult struct {
	stdout string
	stderr string
	err    error
}

func (r *fakeRunner) Run(_ context.Context, _ []byte, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	idx := len(r.calls) - 1
	if idx >= len(r.results) {
		idx = len(r.results) - 1
	}
	res := r.results[idx]
	return []byte(res.stdout), []byte(res.stderr), res.err
}
