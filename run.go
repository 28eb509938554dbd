// SPDX-License-Identifier: EPL-2.0

package wavpipe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Run executes op in a single pass from in to out. Both streams are
// buffered; out is flushed even when op fails, so bytes produced before
// the failure still reach it.
func Run(op Operation, in io.Reader, out io.Writer, log logrus.FieldLogger) error {
	src := &countingReader{r: bufio.NewReader(in)}
	buffered := bufio.NewWriter(out)
	dst := &countingWriter{w: buffered}

	err := op.run(src, dst)

	if ferr := buffered.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("flushing output: %w", ferr)
	}

	log.WithFields(logrus.Fields{
		"command":   op.Name(),
		"bytes_in":  src.n,
		"bytes_out": dst.n,
	}).Debug("command finished")

	return err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
