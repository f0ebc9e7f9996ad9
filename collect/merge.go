package collect

import "iter"

// Merge 以轮转（round-robin）方式交错合并 N 个序列：
// 每一轮从仍未耗尽的序列各取一个，直至全部耗尽。
func Merge[T any](seqs ...iter.Seq[T]) []T {
	type puller struct {
		next func() (T, bool)
		stop func()
		done bool
	}

	pullers := make([]*puller, 0, len(seqs))
	for _, s := range seqs {
		next, stop := iter.Pull(s)
		p := &puller{next: next, stop: stop}
		defer p.stop()
		pullers = append(pullers, p)
	}

	var out []T
	remaining := len(pullers)
	for remaining > 0 {
		for _, p := range pullers {
			if p.done {
				continue
			}
			v, ok := p.next()
			if !ok {
				p.done = true
				remaining--
				continue
			}
			out = append(out, v)
		}
	}
	return out
}
