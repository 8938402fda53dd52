/*
* Copyright (c) 2023-present unTill Pro, Ltd.
 */

package testingu

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// CmdTestCase describes single command line run and its expected results.
//
// Empty pattern means the output must be empty.
type CmdTestCase struct {
	Name                   string
	Args                   []string
	ExpectedErr            error
	ExpectedErrPatterns    []string
	ExpectedStdout         *string
	ExpectedStdoutPatterns []string
	ExpectedStderrPatterns []string
}

// RunCmdTestCases runs execute for each test case with stdout and stderr captured
func RunCmdTestCases(t *testing.T, execute func(args []string, version string) error, testCases []CmdTestCase, version string) {
	t.Helper()
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Helper()
			stdout, stderr, err := CaptureStdoutStderr(func() error {
				return execute(tc.Args, version)
			})
			t.Log("stdout:", stdout)
			t.Log("stderr:", stderr)

			if tc.ExpectedStdout != nil {
				assert.Equal(t, *tc.ExpectedStdout, stdout, "stdout")
			}
			checkOutput(t, tc.ExpectedStdoutPatterns, stdout, "stdout")
			checkOutput(t, tc.ExpectedStderrPatterns, stderr, "stderr")
			checkError(t, tc.ExpectedErr, tc.ExpectedErrPatterns, err)
		})
	}
}

// Output returns pointer to s, use for CmdTestCase.ExpectedStdout
func Output(s string) *string { return &s }

func checkError(t *testing.T, expectedErr error, expectedErrPatterns []string, actualErr error) {
	t.Helper()
	if expectedErr == nil && len(expectedErrPatterns) == 0 {
		assert.NoError(t, actualErr)
		return
	}
	if !assert.Error(t, actualErr, "error was not returned as expected") {
		return
	}
	if expectedErr != nil {
		assert.ErrorIs(t, actualErr, expectedErr)
	}
	for _, p := range expectedErrPatterns {
		assert.ErrorContains(t, actualErr, p)
	}
}

func checkOutput(t *testing.T, expectedPatterns []string, actual, outputTitle string) {
	t.Helper()
	for _, p := range expectedPatterns {
		if len(p) == 0 {
			assert.Empty(t, actual, "%s: expected nothing", outputTitle)
			continue
		}
		assert.True(t, strings.Contains(actual, p), "%s: expected pattern `%v`, actual `%v`", outputTitle, p, actual)
	}
}

// CaptureStdoutStderr redirects os.Stdout and os.Stderr to pipes while f is running
func CaptureStdoutStderr(f func() error) (stdout string, stderr string, err error) {
	stdoutReader, stdoutWriter, err := os.Pipe()
	if err != nil {
		return "", "", err
	}
	stderrReader, stderrWriter, err := os.Pipe()
	if err != nil {
		return "", "", err
	}

	origStdout, origStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdoutWriter, stderrWriter
	defer func() { os.Stdout, os.Stderr = origStdout, origStderr }()

	wg := sync.WaitGroup{}
	read := func(r io.Reader, to *string) {
		defer wg.Done()
		var b bytes.Buffer
		_, _ = io.Copy(&b, r)
		*to = b.String()
	}
	wg.Add(2)
	go read(stdoutReader, &stdout)
	go read(stderrReader, &stderr)

	err = f()
	stdoutWriter.Close()
	stderrWriter.Close()
	wg.Wait()
	stdoutReader.Close()
	stderrReader.Close()
	return stdout, stderr, err
}
