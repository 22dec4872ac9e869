// Package term is a line-oriented terminal shell for the feed. It shows the
// active video and the counters and turns typed commands into feed events.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/swipe"
)

// Controller is the feed controller used by the shell
type Controller interface {
	Apply(e swipe.Event)
	Display() swipe.Display
	OnScrollToTop(s swipe.Scroller)
}

// Shell reads commands from in and draws the feed to out
type Shell struct {
	ctrl Controller
	in   io.Reader
	out  io.Writer

	title   *color.Color
	like    *color.Color
	dislike *color.Color
	muted   *color.Color
}

const helpText = "commands: r/like swipe right, l/dislike swipe left, x/reset start over, q quit"

// New makes a shell. Colors follow the terminal unless noColor is set.
func New(ctrl Controller, in io.Reader, out io.Writer, noColor bool) *Shell {
	s := &Shell{
		ctrl:    ctrl,
		in:      in,
		out:     out,
		title:   color.New(color.FgCyan, color.Bold),
		like:    color.New(color.FgGreen),
		dislike: color.New(color.FgRed),
		muted:   color.New(color.FgWhite),
	}
	if noColor {
		for _, c := range []*color.Color{s.title, s.like, s.dislike, s.muted} {
			c.DisableColor()
		}
	}
	ctrl.OnScrollToTop(s)
	return s
}

// ScrollToTop is called by the controller on reset
func (s *Shell) ScrollToTop() {
	s.printf("%s\n", s.muted.Sprint("^ back to the first video"))
}

// Run draws the feed and handles commands until quit, end of input or ctx cancellation.
// The input is closed on return if it implements io.Closer, this unblocks the pending read.
func (s *Shell) Run(ctx context.Context) error {
	lines := make(chan string)
	errs := make(chan error, 1)
	done := make(chan struct{})
	defer func() {
		close(done)
		if c, ok := s.in.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errs <- fmt.Errorf("read input: %w", err)
		}
	}()

	s.printf("%s\n", s.muted.Sprint(helpText))
	s.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errs:
					return err
				default:
					return nil
				}
			}
			if quit := s.handle(line); quit {
				return nil
			}
		}
	}
}

// handle executes a single command and reports whether the shell should stop
func (s *Shell) handle(line string) (quit bool) {
	cmd := strings.ToLower(strings.TrimSpace(line))
	switch cmd {
	case "q", "quit", "exit":
		return true
	case "x", "reset", "refresh":
		s.ctrl.Apply(swipe.ResetRequested{})
		s.draw()
	case "r", "right", "k", "like":
		s.swipe(domain.DirectionRight)
	case "l", "left", "d", "dislike":
		s.swipe(domain.DirectionLeft)
	case "", "?", "h", "help":
		if cmd != "" {
			s.printf("%s\n", helpText)
		}
		s.draw()
	default:
		s.printf("unknown command %q, %s\n", line, helpText)
	}
	return false
}

// swipe classifies the active video, the only one a user can swipe
func (s *Shell) swipe(direction domain.Direction) {
	active, ok := s.ctrl.Display().Active()
	if !ok {
		s.printf("no active video, type x to start over\n")
		return
	}
	s.ctrl.Apply(swipe.SwipeCompleted{Direction: direction, Index: active.Index})
	s.draw()
}

func (s *Shell) draw() {
	d := s.ctrl.Display()
	if active, ok := d.Active(); ok {
		title := active.Video.Title
		if title == "" {
			title = fmt.Sprintf("video %d", active.Video.ID)
		}
		s.printf("%s %s\n", s.title.Sprintf("[%d/%d]", active.Index+1, d.Total), s.title.Sprint(title))
		s.printf("      %s\n", s.muted.Sprint(active.Video.URI))
	} else {
		s.printf("%s\n", s.title.Sprint("no more videos, type x to start over"))
	}
	s.printf("%s  %s\n", s.like.Sprintf("Liked: %d", d.LikedCount), s.dislike.Sprintf("Disliked: %d", d.DislikedCount))
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
