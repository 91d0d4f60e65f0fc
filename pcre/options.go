package pcre

import (
	"strconv"
	"strings"
)

// The four option families map 1:1 to the engine's native bit encodings.
// A value of any family is a set: union members with bitwise OR. Ordering
// and repetition are irrelevant, and the zero value is the empty set.

// CompileOption is a set of compile-time option bits.
type CompileOption uint32

// Compile-time options, in the engine's native encoding.
const (
	Caseless         CompileOption = 0x00000001
	Multiline        CompileOption = 0x00000002
	DotAll           CompileOption = 0x00000004
	Extended         CompileOption = 0x00000008
	Anchored         CompileOption = 0x00000010
	DollarEndOnly    CompileOption = 0x00000020
	ExtraCompat      CompileOption = 0x00000040
	Ungreedy         CompileOption = 0x00000200
	NoAutoCapture    CompileOption = 0x00001000
	AutoCallout      CompileOption = 0x00004000
	FirstLine        CompileOption = 0x00040000
	DupNames         CompileOption = 0x00080000
	NewlineCR        CompileOption = 0x00100000
	NewlineLF        CompileOption = 0x00200000
	NewlineCRLF      CompileOption = 0x00300000
	NewlineAny       CompileOption = 0x00400000
	NewlineAnyCRLF   CompileOption = 0x00500000
	BsrAnyCRLF       CompileOption = 0x00800000
	BsrUnicode       CompileOption = 0x01000000
	JavaScriptCompat CompileOption = 0x02000000
	UCP              CompileOption = 0x20000000
)

// ExecOption is a set of match-time option bits.
type ExecOption uint32

// Match-time options, in the engine's native encoding.
const (
	ExecAnchored        ExecOption = 0x00000010
	ExecNotBOL          ExecOption = 0x00000080
	ExecNotEOL          ExecOption = 0x00000100
	ExecNotEmpty        ExecOption = 0x00000400
	ExecPartialSoft     ExecOption = 0x00008000
	ExecNewlineCR       ExecOption = 0x00100000
	ExecNewlineLF       ExecOption = 0x00200000
	ExecNewlineCRLF     ExecOption = 0x00300000
	ExecNewlineAny      ExecOption = 0x00400000
	ExecNewlineAnyCRLF  ExecOption = 0x00500000
	ExecBsrAnyCRLF      ExecOption = 0x00800000
	ExecBsrUnicode      ExecOption = 0x01000000
	ExecNoStartOptimize ExecOption = 0x04000000
	ExecPartialHard     ExecOption = 0x08000000
	ExecNotEmptyAtStart ExecOption = 0x10000000

	// ExecPartial is the historical name for soft partial matching.
	ExecPartial = ExecPartialSoft
)

// StudyOption is a set of study-time option bits.
type StudyOption uint32

// Study options, in the engine's native encoding.
const (
	StudyJITCompile            StudyOption = 0x0001
	StudyJITPartialSoftCompile StudyOption = 0x0002
	StudyJITPartialHardCompile StudyOption = 0x0004

	// StudyExtraNeeded forces creation of an extra block even when the
	// engine found nothing worth recording. Requires PCRE 8.32 or later.
	StudyExtraNeeded StudyOption = 0x0008
)

// ExtraOption is a set of extra-block feature flag bits, gating which of
// the block's optional fields are active.
type ExtraOption uint32

// Extra-block feature flags, in the engine's native encoding.
const (
	ExtraStudyData           ExtraOption = 0x0001
	ExtraMatchLimit          ExtraOption = 0x0002
	ExtraCalloutData         ExtraOption = 0x0004
	ExtraTables              ExtraOption = 0x0008
	ExtraMatchLimitRecursion ExtraOption = 0x0010
	ExtraMark                ExtraOption = 0x0020
	ExtraExecutableJIT       ExtraOption = 0x0040
)

// flagName pairs a native bit pattern with its display name. Composite
// newline encodings precede their components so String decomposes them as
// a single name.
type flagName struct {
	bits uint32
	name string
}

var compileOptionNames = []flagName{
	{uint32(NewlineAnyCRLF), "NewlineAnyCRLF"},
	{uint32(NewlineCRLF), "NewlineCRLF"},
	{uint32(Caseless), "Caseless"},
	{uint32(Multiline), "Multiline"},
	{uint32(DotAll), "DotAll"},
	{uint32(Extended), "Extended"},
	{uint32(Anchored), "Anchored"},
	{uint32(DollarEndOnly), "DollarEndOnly"},
	{uint32(ExtraCompat), "ExtraCompat"},
	{uint32(Ungreedy), "Ungreedy"},
	{uint32(NoAutoCapture), "NoAutoCapture"},
	{uint32(AutoCallout), "AutoCallout"},
	{uint32(FirstLine), "FirstLine"},
	{uint32(DupNames), "DupNames"},
	{uint32(NewlineCR), "NewlineCR"},
	{uint32(NewlineLF), "NewlineLF"},
	{uint32(NewlineAny), "NewlineAny"},
	{uint32(BsrAnyCRLF), "BsrAnyCRLF"},
	{uint32(BsrUnicode), "BsrUnicode"},
	{uint32(JavaScriptCompat), "JavaScriptCompat"},
	{uint32(UCP), "UCP"},
}

var execOptionNames = []flagName{
	{uint32(ExecNewlineAnyCRLF), "ExecNewlineAnyCRLF"},
	{uint32(ExecNewlineCRLF), "ExecNewlineCRLF"},
	{uint32(ExecAnchored), "ExecAnchored"},
	{uint32(ExecNotBOL), "ExecNotBOL"},
	{uint32(ExecNotEOL), "ExecNotEOL"},
	{uint32(ExecNotEmpty), "ExecNotEmpty"},
	{uint32(ExecPartialSoft), "ExecPartialSoft"},
	{uint32(ExecNewlineCR), "ExecNewlineCR"},
	{uint32(ExecNewlineLF), "ExecNewlineLF"},
	{uint32(ExecNewlineAny), "ExecNewlineAny"},
	{uint32(ExecBsrAnyCRLF), "ExecBsrAnyCRLF"},
	{uint32(ExecBsrUnicode), "ExecBsrUnicode"},
	{uint32(ExecNoStartOptimize), "ExecNoStartOptimize"},
	{uint32(ExecPartialHard), "ExecPartialHard"},
	{uint32(ExecNotEmptyAtStart), "ExecNotEmptyAtStart"},
}

var studyOptionNames = []flagName{
	{uint32(StudyJITCompile), "StudyJITCompile"},
	{uint32(StudyJITPartialSoftCompile), "StudyJITPartialSoftCompile"},
	{uint32(StudyJITPartialHardCompile), "StudyJITPartialHardCompile"},
	{uint32(StudyExtraNeeded), "StudyExtraNeeded"},
}

var extraOptionNames = []flagName{
	{uint32(ExtraStudyData), "ExtraStudyData"},
	{uint32(ExtraMatchLimit), "ExtraMatchLimit"},
	{uint32(ExtraCalloutData), "ExtraCalloutData"},
	{uint32(ExtraTables), "ExtraTables"},
	{uint32(ExtraMatchLimitRecursion), "ExtraMatchLimitRecursion"},
	{uint32(ExtraMark), "ExtraMark"},
	{uint32(ExtraExecutableJIT), "ExtraExecutableJIT"},
}

// formatFlags decomposes a bit set against its fixed name table.
func formatFlags(bits uint32, names []flagName) string {
	if bits == 0 {
		return "0"
	}
	var parts []string
	rest := bits
	for _, f := range names {
		if f.bits != 0 && rest&f.bits == f.bits {
			parts = append(parts, f.name)
			rest &^= f.bits
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}

func (o CompileOption) String() string { return formatFlags(uint32(o), compileOptionNames) }

func (o ExecOption) String() string { return formatFlags(uint32(o), execOptionNames) }

func (o StudyOption) String() string { return formatFlags(uint32(o), studyOptionNames) }

func (o ExtraOption) String() string { return formatFlags(uint32(o), extraOptionNames) }
