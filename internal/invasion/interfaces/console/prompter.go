package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompter 从一个 io.Reader 按行读取玩家输入。
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

type readResult struct {
	line string
	err  error
}

// Prompt 输出提示后读一行，去掉行尾换行。最后一行没有换行也照常返回，之后返回 io.EOF。
// 读取放在单独的 goroutine 里，ctx 取消时立即返回；取消之后不应再调用 Prompt。
func (p *Prompter) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		fmt.Fprint(p.w, prompt)
	}

	ch := make(chan readResult, 1)
	go func() {
		line, err := p.r.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	var res readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-ch:
	}
	if res.err != nil {
		if res.err == io.EOF && res.line != "" {
			return strings.TrimRight(res.line, "\r\n"), nil
		}
		return "", res.err
	}
	return strings.TrimRight(res.line, "\r\n"), nil
}
