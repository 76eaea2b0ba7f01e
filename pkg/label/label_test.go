package label

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// branchChainSource is the classic 4-branch sample program.
const branchChainSource = `var=int(input())
if(var == 200):
    print ("1 - Got a true expression value")
    print (var)
elif var == 150:
    print ("2 - Got a true expression value")
    print (var)
elif var == 100:
    print ("3 - Got a true expression value")
    print (var)
else:
    print ("4 - Got a false expression value")
    print (var)
`

func TestBuildBranchChain(t *testing.T) {
	got := Strings(Build(branchChainSource))
	want := []string{"start", "if1", "ifexp1", "elif2", "elifexp2", "elif3", "elifexp3", "else4", "end"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "no keyword lines",
			source: "x = 1\nprint(x)\n",
			want:   []string{"start", "end"},
		},
		{
			name:   "empty source",
			source: "",
			want:   []string{"start", "end"},
		},
		{
			name:   "single while",
			source: "while x < 3:\n    print(x)\n",
			want:   []string{"start", "while1", "end"},
		},
		{
			name:   "single for",
			source: "for i in range(3):\n    print(i)\n",
			want:   []string{"start", "for1", "end"},
		},
		{
			name:   "nested if gets sp infix",
			source: "if a:\n    if b:\n        print(x)\n",
			want:   []string{"start", "if1", "ifexp1", "ifsp2", "ifspexp2", "end"},
		},
		{
			name:   "nested else",
			source: "if a:\n    if b:\n        print(x)\n    else:\n        print(y)\n",
			want:   []string{"start", "if1", "ifexp1", "ifsp2", "ifspexp2", "elsesp3", "end"},
		},
		{
			name:   "while nested in for",
			source: "for i in x:\n    while y:\n        print(y)\n",
			want:   []string{"start", "for1", "whilesp2", "end"},
		},
		{
			name:   "dedent closes block",
			source: "if a:\n    print(x)\nwhile b:\n    print(y)\n",
			want:   []string{"start", "if1", "ifexp1", "while2", "end"},
		},
		{
			name:   "dedented plain line closes block",
			source: "if a:\n    print(x)\ndone = 1\nif b:\n    print(y)\n",
			want:   []string{"start", "if1", "ifexp1", "if2", "ifexp2", "end"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strings(Build(tt.source))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Build(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestBuildSamplePrograms(t *testing.T) {
	tests := []struct {
		file string
		want []string
	}{
		{
			file: "branch_chain.py",
			want: []string{"start", "if1", "ifexp1", "elif2", "elifexp2", "elif3", "elifexp3", "else4", "end"},
		},
		{
			file: "nested_loops.py",
			want: []string{"start", "for1", "whilesp2", "end"},
		},
		{
			file: "mixed.py",
			want: []string{"start", "while1", "ifsp2", "ifspexp2", "elsesp3", "end"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join("..", "..", "testdata", tt.file))
			if err != nil {
				t.Fatalf("read sample: %v", err)
			}
			got := Strings(Build(string(src)))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Build(%s) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestBuildBlankLinesIgnored(t *testing.T) {
	withBlanks := "if a:\n\n    print(x)\n\n\nelif b:\n   \n    print(y)\nelse:\n    print(z)\n"
	withoutBlanks := "if a:\n    print(x)\nelif b:\n    print(y)\nelse:\n    print(z)\n"

	got := Strings(Build(withBlanks))
	want := Strings(Build(withoutBlanks))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("blank lines changed the sequence: %v vs %v", got, want)
	}
}

func TestBuildCounterIsGlobalAndGapless(t *testing.T) {
	source := "if a:\n    print(x)\nfor i in y:\n    print(i)\nwhile b:\n    print(b)\n"
	seq := Build(source)

	// Non-exp, non-marker labels must be numbered 1..n in appearance order.
	n := 0
	for _, l := range seq {
		if l.Class == ClassStart || l.Class == ClassEnd || l.Exp {
			continue
		}
		n++
		if l.N != n {
			t.Errorf("label %s has counter %d, want %d", l, l.N, n)
		}
	}
	if n != 3 {
		t.Errorf("matched keyword occurrences = %d, want 3", n)
	}
}

func TestBuildBoundaries(t *testing.T) {
	seq := Build(branchChainSource)

	if seq[0] != Start {
		t.Errorf("sequence starts with %v, want start", seq[0])
	}
	if seq[len(seq)-1] != End {
		t.Errorf("sequence ends with %v, want end", seq[len(seq)-1])
	}
}

func TestBuildIdempotent(t *testing.T) {
	first := Strings(Build(branchChainSource))
	second := Strings(Build(branchChainSource))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Build produced different sequences: %v vs %v", first, second)
	}
}

func TestLabelString(t *testing.T) {
	tests := []struct {
		name string
		lab  Label
		want string
	}{
		{"start", Start, "start"},
		{"end", End, "end"},
		{"plain if", Label{Class: ClassIf, N: 3}, "if3"},
		{"nested if", Label{Class: ClassIf, N: 3, Nested: true}, "ifsp3"},
		{"if expression", Label{Class: ClassIf, N: 3, Exp: true}, "ifexp3"},
		{"nested if expression", Label{Class: ClassIf, N: 3, Nested: true, Exp: true}, "ifspexp3"},
		{"nested else", Label{Class: ClassElse, N: 7, Nested: true}, "elsesp7"},
		{"plain while", Label{Class: ClassWhile, N: 2}, "while2"},
		{"nested for", Label{Class: ClassFor, N: 5, Nested: true}, "forsp5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lab.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
