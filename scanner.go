package main

import (
	"bufio"
	"io"
	"runtime"
	"sync"

	"github.com/ssgreg/logf"
	"github.com/ssgreg/logftext"
	"github.com/ssgreg/rcparse/rowcol"
)

// Options holds scan options.
type Options struct {
	NoColor        bool
	BufferSize     uint
	NumberLines    bool
	StartingNumber int
	Echo           bool
	Parser         rowcol.Parser
}

// stats counts outcomes by kind.
type stats struct {
	Success int
	Empty   int
	Error   int
}

func (s *stats) add(k rowcol.Kind) {
	switch k {
	case rowcol.Success:
		s.Success++
	case rowcol.Empty:
		s.Empty++
	default:
		s.Error++
	}
}

func (s *stats) merge(o stats) {
	s.Success += o.Success
	s.Empty += o.Empty
	s.Error += o.Error
}

// Lines returns the total number of lines counted.
func (s stats) Lines() int {
	return s.Success + s.Empty + s.Error
}

type shot struct {
	exist bool
	seq   int
	kind  rowcol.Kind
	buf   *logf.Buffer
}

const (
	ringBufferCapacity     = 1024
	writerChannelCapacity  = 128
	scannerChannelCapacity = 128

	lineBufferCapacity = 256
)

// ringBuffer restores input order of shots produced by concurrent parse
// workers. seq is the zero-based position of a line within one scan.
type ringBuffer struct {
	index int
	pos   int
	data  [ringBufferCapacity]shot
}

func (b *ringBuffer) put(s shot) bool {
	if s.seq >= b.index+ringBufferCapacity {
		return false
	}

	pos := b.pos + (s.seq - b.index)
	if pos >= ringBufferCapacity {
		pos -= ringBufferCapacity
	}
	b.data[pos] = s

	return true
}

func (b *ringBuffer) get() (shot, bool) {
	if b.data[b.pos].exist {
		b.data[b.pos].exist = false
		old := b.pos
		b.pos++
		b.index++
		if b.pos >= ringBufferCapacity {
			b.pos -= ringBufferCapacity
		}

		return b.data[old], true
	}

	return shot{}, false
}

// orderedWriter writes shots to the underlying writer in input order and
// counts their outcomes.
type orderedWriter struct {
	ch  chan shot
	wg  sync.WaitGroup
	st  stats
	err error
}

// makeWriter starts the goroutine behind an orderedWriter.
func makeWriter(w io.Writer, p Pool) *orderedWriter {
	ow := &orderedWriter{ch: make(chan shot, writerChannelCapacity)}
	rb := &ringBuffer{}
	slowBuf := make(map[int]shot)

	ow.wg.Add(1)
	go func() {
		defer ow.wg.Done()

		bw := bufio.NewWriterSize(w, 4096)
		keep := func(err error) {
			if err != nil && ow.err == nil {
				ow.err = err
			}
		}
		defer func() {
			keep(bw.Flush())
		}()

		emit := func() {
			for {
				s, ok := rb.get()
				if !ok {
					return
				}
				_, err := bw.Write(s.buf.Bytes())
				keep(err)
				ow.st.add(s.kind)
				p.Put(s.buf)
			}
		}

		// drain moves shots that were too far ahead into the ring as soon
		// as the ring has room for them.
		drain := func() {
			for {
				emit()
				moved := false
				for seq, v := range slowBuf {
					if rb.put(v) {
						delete(slowBuf, seq)
						moved = true
					}
				}
				if !moved {
					return
				}
			}
		}

		for {
			var data shot
			var ok bool
			select {
			case data, ok = <-ow.ch:
			default:
				// Nothing is ready. Flush what we have before blocking.
				keep(bw.Flush())
				data, ok = <-ow.ch
			}
			if !ok {
				drain()

				return
			}

			if !rb.put(data) {
				slowBuf[data.seq] = data
			}
			drain()
		}
	}()

	return ow
}

// close waits for all shots to be written and returns the outcome counts
// along with the first write error.
func (ow *orderedWriter) close() (stats, error) {
	close(ow.ch)
	ow.wg.Wait()

	return ow.st, ow.err
}

type scanEntry struct {
	seq     int
	tooLong bool
	line    *logf.Buffer
}

func makeFormatter(in chan scanEntry, out chan shot, p Pool, opts Options) *sync.WaitGroup {
	eseq := logftext.EscapeSequence{NoColor: opts.NoColor}

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()

		for se := range in {
			r := result{number: opts.StartingNumber + se.seq}
			if se.tooLong {
				r.outcome = rowcol.Outcome{Kind: rowcol.Error}
				r.line = []byte(lineTooLong)
			} else {
				r.line = se.line.Bytes()
				r.outcome = opts.Parser.Parse(bytesToString(r.line))
			}

			buf := p.Get()
			format(buf, eseq, &r, opts)
			p.Put(se.line)

			out <- shot{true, se.seq, r.outcome.Kind, buf}
		}
	}()

	return &wg
}

// scan parses every line of r and writes the results to w. It returns the
// number the next line would get and the outcome counts.
func scan(r io.Reader, w io.Writer, opts Options) (int, stats, error) {
	var st stats
	if opts.BufferSize == 0 {
		return opts.StartingNumber, st, errZeroBuffer
	}
	if opts.Parser == nil {
		opts.Parser = rowcol.Manual{}
	}

	scanBuf := make([]byte, opts.BufferSize)

	inCh := make(chan scanEntry, scannerChannelCapacity)

	p := NewPool(lineBufferCapacity)

	ow := makeWriter(w, p)

	wgs := make([]*sync.WaitGroup, runtime.NumCPU())
	for i := 0; i < len(wgs); i++ {
		wgs[i] = makeFormatter(inCh, ow.ch, p, opts)
	}

	seq := 0
	err := func() error {
		lastLineWasTooLong := false
		for {
			scanner := bufio.NewScanner(r)
			scanner.Buffer(scanBuf, len(scanBuf))

			for scanner.Scan() {
				se := scanEntry{seq: seq}
				seq++

				if lastLineWasTooLong {
					lastLineWasTooLong = false
					se.tooLong = true
				} else {
					// The scanner reuses its buffer, so the line is copied
					// before it leaves this goroutine.
					se.line = p.Get()
					se.line.AppendBytes(scanner.Bytes())
				}

				inCh <- se
			}

			switch scanner.Err() {
			case nil:
				if lastLineWasTooLong {
					// The input ended right after a full buffer, so the tail
					// of the long line never came back as a token.
					inCh <- scanEntry{seq: seq, tooLong: true}
					seq++
				}

				return nil

			case bufio.ErrTooLong:
				// Data does not match to the buffer. As scanner drops the read
				// data there's nothing we can do about it except setting the flag
				// to replace the final (next) part of the line.
				lastLineWasTooLong = true

			default:
				return scanner.Err()
			}
		}
	}()

	close(inCh)
	for i := 0; i < len(wgs); i++ {
		wgs[i].Wait()
	}
	st, werr := ow.close()
	if err == nil {
		err = werr
	}

	return opts.StartingNumber + seq, st, err
}
