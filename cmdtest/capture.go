package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// capture runs run with os.Args set to args, stdin fed from a pipe and
// stdout and stderr collected. Process state is restored before it returns.
// A panic in run is reported as an error.
func capture(args []string, stdin string, run func() int) (got Expect, err error) {
	inR, inW, err := os.Pipe()
	if err != nil {
		return got, err
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		return got, err
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		return got, err
	}

	oldArgs, oldStdin, oldStdout, oldStderr := os.Args, os.Stdin, os.Stdout, os.Stderr
	os.Args, os.Stdin, os.Stdout, os.Stderr = args, inR, outW, errW
	defer func() {
		os.Args, os.Stdin, os.Stdout, os.Stderr = oldArgs, oldStdin, oldStdout, oldStderr
	}()

	go func() {
		_, _ = io.WriteString(inW, stdin)
		_ = inW.Close()
	}()
	stdout := drain(outR)
	stderr := drain(errR)

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		got.ExitCode = run()
	}()

	_ = outW.Close()
	_ = errW.Close()
	got.Stdout = <-stdout
	got.Stderr = <-stderr
	_ = inR.Close()
	return got, err
}

func drain(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		ch <- buf.String()
	}()
	return ch
}
