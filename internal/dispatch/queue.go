package dispatch

// queue is an unbounded FIFO channel: sends on in never block, arrival
// order is preserved, and bursts are absorbed in the backlog slice. The
// hotkey and tray producers feed in; the loop drains out.
type queue struct {
	in   chan Event
	out  chan Event
	done chan struct{}
}

func newQueue(done chan struct{}) *queue {
	q := &queue{
		in:   make(chan Event),
		out:  make(chan Event),
		done: done,
	}
	go q.pump()
	return q
}

func (q *queue) pump() {
	var backlog []Event
	for {
		if len(backlog) == 0 {
			select {
			case ev := <-q.in:
				backlog = append(backlog, ev)
			case <-q.done:
				return
			}
		}
		select {
		case ev := <-q.in:
			backlog = append(backlog, ev)
		case q.out <- backlog[0]:
			backlog = backlog[1:]
		case <-q.done:
			return
		}
	}
}
