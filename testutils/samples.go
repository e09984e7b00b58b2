package testutils

import "github.com/classlint/classlint/jvm"

// ClassSample encapsulates one class fixture and how many findings the rule
// under test should produce for it.
type ClassSample struct {
	Class  *jvm.Class
	Errors int
}

func ins(pc int, op jvm.Opcode) jvm.Instruction {
	return jvm.Instruction{PC: pc, Op: op}
}

func invokeVirtual(pc int, owner, name, descriptor string) jvm.Instruction {
	return jvm.Instruction{PC: pc, Op: jvm.Invokevirtual, ClassName: owner, Name: name, Descriptor: descriptor}
}

func invokeSpecial(pc int, owner, name, descriptor string) jvm.Instruction {
	return jvm.Instruction{PC: pc, Op: jvm.Invokespecial, ClassName: owner, Name: name, Descriptor: descriptor}
}

func newObject(pc int, typeName string) jvm.Instruction {
	return jvm.Instruction{PC: pc, Op: jvm.New, TypeName: typeName}
}

func astore(pc, slot int) jvm.Instruction {
	return jvm.Instruction{PC: pc, Op: jvm.Astore, VarIndex: slot}
}

func aload(pc, slot int) jvm.Instruction {
	return jvm.Instruction{PC: pc, Op: jvm.Aload, VarIndex: slot}
}

func goTo(pc, target int) jvm.Instruction {
	return jvm.Instruction{PC: pc, Op: jvm.Goto, Target: target}
}

func libraryClass(name string, methods ...*jvm.Method) *jvm.Class {
	init := &jvm.Method{Name: "<init>", Descriptor: "()V"}
	return &jvm.Class{
		Name:      name,
		SuperName: "java.lang.Object",
		Methods:   append([]*jvm.Method{init}, methods...),
	}
}

// LibraryClasses returns the minimal runtime library the fixtures resolve
// invoked methods against. Code bodies are omitted; only declared throws
// clauses matter for resolution.
func LibraryClasses() []*jvm.Class {
	resource := libraryClass("com.example.Resource",
		&jvm.Method{Name: "open", Descriptor: "()V", Exceptions: []string{"java.io.IOException"}},
		&jvm.Method{Name: "close", Descriptor: "()V", Exceptions: []string{"java.io.IOException", "java.sql.SQLException"}},
		&jvm.Method{Name: "get", Descriptor: "()V"},
	)
	return []*jvm.Class{
		libraryClass("java.lang.Object"),
		libraryClass("java.lang.Throwable"),
		libraryClass("java.lang.Exception"),
		libraryClass("java.lang.RuntimeException"),
		libraryClass("java.lang.IllegalMonitorStateException"),
		libraryClass("java.io.IOException"),
		libraryClass("java.sql.SQLException"),
		resource,
	}
}

// NewSampleRepository builds a repository holding the library classes plus
// any extras the caller wants resolvable.
func NewSampleRepository(extra ...*jvm.Class) *jvm.MemoryRepository {
	repo := jvm.NewMemoryRepository()
	for _, cls := range LibraryClasses() {
		repo.Add(cls)
	}
	for _, cls := range extra {
		repo.Add(cls)
	}
	return repo
}

func sampleClass(name, methodName string, maxLocals int, instructions []jvm.Instruction, table []jvm.ExceptionTableEntry) *jvm.Class {
	return &jvm.Class{
		Name:      name,
		SuperName: "java.lang.Object",
		Methods: []*jvm.Method{
			{
				Name:       methodName,
				Descriptor: "()V",
				Code: &jvm.Code{
					MaxLocals:      maxLocals,
					Instructions:   instructions,
					ExceptionTable: table,
				},
			},
		},
	}
}

// SampleClassWideCatch guards a wide region that only raises IOException yet
// catches Exception. One finding at base priority.
var SampleClassWideCatch = sampleClass("com.example.WideCatch", "run", 2,
	[]jvm.Instruction{
		invokeVirtual(10, "com.example.Resource", "open", "()V"),
		goTo(13, 330),
		astore(320, 1),
		aload(321, 1),
		ins(322, jvm.Pop),
		ins(330, jvm.Return),
	},
	[]jvm.ExceptionTableEntry{
		{StartPC: 10, EndPC: 310, HandlerPC: 320, CatchType: 5, CatchTypeName: "java.lang.Exception"},
	},
)

// SampleClassNarrowCatch guards a narrow region whose calls declare two
// distinct checked exceptions. The width and diversity adjustments cancel.
var SampleClassNarrowCatch = sampleClass("com.example.NarrowCatch", "copy", 2,
	[]jvm.Instruction{
		invokeVirtual(10, "com.example.Resource", "open", "()V"),
		invokeVirtual(13, "com.example.Resource", "close", "()V"),
		goTo(16, 40),
		astore(30, 1),
		aload(31, 1),
		ins(32, jvm.Pop),
		ins(40, jvm.Return),
	},
	[]jvm.ExceptionTableEntry{
		{StartPC: 10, EndPC: 25, HandlerPC: 30, CatchType: 5, CatchTypeName: "java.lang.Exception"},
	},
)

// SampleClassRuntimeSibling catches Exception with a sibling clause for
// RuntimeException over the same region, which suppresses the finding.
var SampleClassRuntimeSibling = sampleClass("com.example.RuntimeSibling", "run", 2,
	[]jvm.Instruction{
		invokeVirtual(10, "com.example.Resource", "get", "()V"),
		goTo(13, 45),
		astore(30, 1),
		goTo(31, 45),
		astore(35, 1),
		goTo(36, 45),
		ins(45, jvm.Return),
	},
	[]jvm.ExceptionTableEntry{
		{StartPC: 10, EndPC: 25, HandlerPC: 30, CatchType: 5, CatchTypeName: "java.lang.Exception"},
		{StartPC: 10, EndPC: 25, HandlerPC: 35, CatchType: 6, CatchTypeName: "java.lang.RuntimeException"},
	},
)

// SampleClassDeadStore stores the caught exception and never reads it.
var SampleClassDeadStore = sampleClass("com.example.DeadStore", "swallow", 2,
	[]jvm.Instruction{
		invokeVirtual(10, "com.example.Resource", "open", "()V"),
		goTo(13, 70),
		astore(30, 1),
		goTo(31, 70),
		ins(70, jvm.Return),
	},
	[]jvm.ExceptionTableEntry{
		{StartPC: 10, EndPC: 60, HandlerPC: 30, CatchType: 5, CatchTypeName: "java.lang.Exception"},
	},
)

// SampleClassLiveStore is SampleClassDeadStore with the caught exception
// actually read in the handler.
var SampleClassLiveStore = sampleClass("com.example.LiveStore", "swallow", 2,
	[]jvm.Instruction{
		invokeVirtual(10, "com.example.Resource", "open", "()V"),
		goTo(13, 70),
		astore(30, 1),
		aload(31, 1),
		ins(32, jvm.Pop),
		goTo(33, 70),
		ins(70, jvm.Return),
	},
	[]jvm.ExceptionTableEntry{
		{StartPC: 10, EndPC: 60, HandlerPC: 30, CatchType: 5, CatchTypeName: "java.lang.Exception"},
	},
)

// SampleClassMissingCallee invokes a method on a class absent from the
// repository. The call contributes no throw sites, so the catch is still
// flagged, and the lookup failure goes to the diagnostic log.
var SampleClassMissingCallee = sampleClass("com.example.MissingCallee", "run", 2,
	[]jvm.Instruction{
		invokeVirtual(10, "com.example.Vanished", "run", "()V"),
		goTo(13, 40),
		astore(30, 1),
		aload(31, 1),
		ins(32, jvm.Pop),
		ins(40, jvm.Return),
	},
	[]jvm.ExceptionTableEntry{
		{StartPC: 10, EndPC: 20, HandlerPC: 30, CatchType: 5, CatchTypeName: "java.lang.Exception"},
	},
)

// SampleClassRethrow constructs and throws Exception inside the guarded
// region, so catching Exception is justified.
var SampleClassRethrow = sampleClass("com.example.Rethrow", "fail", 2,
	[]jvm.Instruction{
		newObject(10, "java.lang.Exception"),
		ins(13, jvm.Dup),
		invokeSpecial(14, "java.lang.Exception", "<init>", "()V"),
		ins(17, jvm.Athrow),
		astore(30, 1),
		goTo(31, 40),
		ins(40, jvm.Return),
	},
	[]jvm.ExceptionTableEntry{
		{StartPC: 10, EndPC: 20, HandlerPC: 30, CatchType: 5, CatchTypeName: "java.lang.Exception"},
	},
)

// SampleClassFinally carries only the wildcard entry a finally block
// compiles to.
var SampleClassFinally = sampleClass("com.example.Finally", "run", 2,
	[]jvm.Instruction{
		invokeVirtual(10, "com.example.Resource", "open", "()V"),
		goTo(13, 40),
		astore(30, 1),
		goTo(31, 40),
		ins(40, jvm.Return),
	},
	[]jvm.ExceptionTableEntry{
		{StartPC: 10, EndPC: 20, HandlerPC: 30, CatchType: 0},
	},
)

// SampleClassDegenerate has an empty guarded interval.
var SampleClassDegenerate = sampleClass("com.example.Degenerate", "run", 2,
	[]jvm.Instruction{
		invokeVirtual(10, "com.example.Resource", "open", "()V"),
		goTo(13, 40),
		astore(30, 1),
		goTo(31, 40),
		ins(40, jvm.Return),
	},
	[]jvm.ExceptionTableEntry{
		{StartPC: 10, EndPC: 10, HandlerPC: 30, CatchType: 5, CatchTypeName: "java.lang.Exception"},
	},
)

// SampleClassDuplicate repeats the same table row twice; each row is
// evaluated on its own.
var SampleClassDuplicate = sampleClass("com.example.Duplicate", "run", 2,
	[]jvm.Instruction{
		invokeVirtual(10, "com.example.Resource", "get", "()V"),
		goTo(13, 40),
		astore(30, 1),
		goTo(31, 40),
		ins(40, jvm.Return),
	},
	[]jvm.ExceptionTableEntry{
		{StartPC: 10, EndPC: 20, HandlerPC: 30, CatchType: 5, CatchTypeName: "java.lang.Exception"},
		{StartPC: 10, EndPC: 20, HandlerPC: 30, CatchType: 5, CatchTypeName: "java.lang.Exception"},
	},
)

// SampleClassMonitorCatch catches IllegalMonitorStateException.
var SampleClassMonitorCatch = sampleClass("com.example.MonitorCatcher", "sync", 2,
	[]jvm.Instruction{
		invokeVirtual(10, "com.example.Resource", "get", "()V"),
		goTo(13, 40),
		astore(30, 1),
		goTo(31, 40),
		ins(40, jvm.Return),
	},
	[]jvm.ExceptionTableEntry{
		{StartPC: 10, EndPC: 20, HandlerPC: 30, CatchType: 7, CatchTypeName: "java.lang.IllegalMonitorStateException"},
	},
)

// SampleClassesBroadCatch is the fixture table for the broad catch rule.
var SampleClassesBroadCatch = []ClassSample{
	{SampleClassWideCatch, 1},
	{SampleClassNarrowCatch, 1},
	{SampleClassRuntimeSibling, 0},
	{SampleClassDeadStore, 1},
	{SampleClassLiveStore, 1},
	{SampleClassMissingCallee, 1},
	{SampleClassRethrow, 0},
	{SampleClassFinally, 0},
	{SampleClassDegenerate, 0},
	{SampleClassDuplicate, 2},
}

// SampleClassesMonitorCatch is the fixture table for the monitor catch rule.
var SampleClassesMonitorCatch = []ClassSample{
	{SampleClassMonitorCatch, 1},
	{SampleClassFinally, 0},
}
