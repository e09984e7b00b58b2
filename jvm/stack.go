package jvm

// OpcodeStack is a conservative simulation of the operand stack, tracking
// just enough to answer "what is the static type of the value at depth N".
// Values the simulation cannot model are kept as untracked slots so stack
// depth stays plausible; an untracked slot never reports a type.
type OpcodeStack struct {
	items []string // type signatures, "" for untracked slots
}

// NewOpcodeStack returns an empty stack, ready for a method entry.
func NewOpcodeStack() *OpcodeStack {
	return &OpcodeStack{}
}

// Reset drops all tracked values. Called at method entry.
func (s *OpcodeStack) Reset() {
	s.items = s.items[:0]
}

// Depth returns the current simulated stack depth.
func (s *OpcodeStack) Depth() int {
	return len(s.items)
}

// SignatureAt returns the type signature of the value at the given depth
// (0 is the top of the stack). The second result is false when the slot is
// absent or untracked; callers must never invent a type in that case.
func (s *OpcodeStack) SignatureAt(depth int) (string, bool) {
	idx := len(s.items) - 1 - depth
	if idx < 0 {
		return "", false
	}
	sig := s.items[idx]
	return sig, sig != ""
}

func (s *OpcodeStack) push(sig string) {
	s.items = append(s.items, sig)
}

func (s *OpcodeStack) pop(n int) {
	if n > len(s.items) {
		n = len(s.items)
	}
	s.items = s.items[:len(s.items)-n]
}

// Observe updates the simulation for one instruction. The analyzer calls it
// after rules have seen the instruction, so a rule observing athrow still
// sees the thrown value on top.
func (s *OpcodeStack) Observe(ins Instruction) {
	switch ins.Op {
	case New:
		s.push(DottedToSignature(ins.TypeName))
	case Dup:
		if top, ok := s.SignatureAt(0); ok {
			s.push(top)
		} else {
			s.push("")
		}
	case Swap:
		if n := len(s.items); n >= 2 {
			s.items[n-1], s.items[n-2] = s.items[n-2], s.items[n-1]
		}
	case Checkcast:
		if len(s.items) > 0 {
			s.items[len(s.items)-1] = DottedToSignature(ins.TypeName)
		}
	case Instanceof:
		s.pop(1)
		s.push("")
	case AconstNull, Ldc, Aload, Iload, Getstatic:
		s.push("")
	case Getfield:
		s.pop(1)
		s.push("")
	case Putstatic, Astore, Istore, Pop, Monitorenter, Monitorexit,
		Ifeq, Ifne, Ifnull, Ifnonnull:
		s.pop(1)
	case Putfield:
		s.pop(2)
	case Invokevirtual, Invokespecial, Invokestatic, Invokeinterface:
		argc := descriptorArgCount(ins.Descriptor)
		if ins.Op != Invokestatic {
			argc++ // receiver
		}
		s.pop(argc)
		if ret := descriptorReturn(ins.Descriptor); ret != "" && ret != "V" {
			if ret[0] == 'L' || ret[0] == '[' {
				s.push(ret)
			} else {
				s.push("")
			}
		}
	case Goto, Nop:
		// no stack effect
	default:
		// Unknown effect: drop everything rather than guess.
		s.Reset()
	}
}
