package touchstone

import (
	"bytes"
	"errors"
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-9

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPorts(t *testing.T) {
	cases := []struct {
		name  string
		ports int
		ok    bool
	}{
		{"dut.s1p", 1, true},
		{"dir/amp.s2p", 2, true},
		{"smatrix_aug-like.s4p", 4, true},
		{"x.s9p", 9, true},
		{"bad.s0p", 0, false},
		{"bad.sxp", 0, false},
		{"x", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		n, err := Ports(c.name)
		if !c.ok {
			require.ErrorIs(t, err, ErrPortCount, c.name)
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			continue
		}
		require.NoError(t, err, c.name)
		assert.Equal(t, c.ports, n, c.name)
	}
}

func TestParseOnePortRI(t *testing.T) {
	path := writeTemp(t, "ri.s1p", "# Hz S RI\n1.0 0.5 0.25\n")
	n, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, []float64{1.0}, n.Freq)
	require.Len(t, n.S, 1)
	assert.Equal(t, complex(0.5, 0.25), n.S[0].At(0, 0))
	assert.Equal(t, RI, n.Format)
	assert.Equal(t, Hz, n.Unit)
	assert.Equal(t, DefaultReference, n.Reference)
}

func TestParseOnePortMA(t *testing.T) {
	path := writeTemp(t, "ma.s1p", "# MHz S MA\n2.0 1.0 90.0\n")
	n, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, []float64{2.0e6}, n.Freq)
	got := n.S[0].At(0, 0)
	assert.InDelta(t, 0, real(got), tol)
	assert.InDelta(t, 1, imag(got), tol)
}

func TestParseDB(t *testing.T) {
	path := writeTemp(t, "db.s1p", "# GHz S DB R 75\n1.5 -20 180\n")
	n, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5e9, n.Freq[0])
	assert.Equal(t, 75.0, n.Reference)
	got := n.S[0].At(0, 0)
	assert.InDelta(t, -0.1, real(got), tol)
	assert.InDelta(t, 0, imag(got), tol)
}

func TestParseCaseInsensitiveHeader(t *testing.T) {
	for _, header := range []string{"# ghz s ma", "#GHZ S Ma r 50", "  # gHz S ri"} {
		n, err := ParseReader("case.s1p", strings.NewReader(header+"\n1 1 0\n"))
		require.NoError(t, err, header)
		assert.Equal(t, 1e9, n.Freq[0], header)
	}
}

func TestParseTranspose(t *testing.T) {
	// 序列顺序 a b c d 按行优先排成 [[a b] [c d]], 转置后 (0,1) 为 c
	src := `! two port
# Hz S RI R 50
10 1 0 2 0
   3 0 4 0
`
	n, err := ParseReader("t.s2p", strings.NewReader(src))
	require.NoError(t, err)
	s := n.S[0]
	assert.Equal(t, complex(1, 0), s.At(0, 0))
	assert.Equal(t, complex(2, 0), s.At(1, 0))
	assert.Equal(t, complex(3, 0), s.At(0, 1))
	assert.Equal(t, complex(4, 0), s.At(1, 1))
}

func TestParseSkipsCommentsAndPartialChunk(t *testing.T) {
	src := `! comment before header
# kHz S RI

1 0.1 0.2 ! inline comment
! between records
2 0.3 0.4
3 0.5
`
	n, err := ParseReader("p.s1p", strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []float64{1e3, 2e3}, n.Freq)
	require.Len(t, n.S, len(n.Freq))
	assert.Equal(t, complex(0.3, 0.4), n.S[1].At(0, 0))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind error
	}{
		{"noheader.s1p", "1 0.5 0.25\n", ErrMissingHeader},
		{"empty.s1p", "", ErrMissingHeader},
		{"marker.s1p", "# Hz X MA\n1 1 0\n", ErrHeader},
		{"short.s1p", "# Hz S\n1 1 0\n", ErrHeader},
		{"unit.s1p", "# XHz S MA R 50\n1 1 0\n", ErrUnit},
		{"format.s1p", "# Hz S XY\n1 1 0\n", ErrFormat},
		{"nodata.s1p", "# Hz S MA\n! only comments\n\n", ErrNoData},
		{"number.s1p", "# Hz S MA\n1 one 0\n", ErrNumber},
		{"nan.s1p", "# Hz S RI\n1 nan 0.5\n", ErrNumber},
		{"inf.s1p", "# Hz S RI\n1 0.5 -Inf\n", ErrNumber},
		{"hex.s1p", "# Hz S RI\n1 0.5 0x1p-2\n", ErrNumber},
		{"range.s1p", "# Hz S RI\n1 0.5 1e400\n", ErrNumber},
		{"sign.s1p", "# Hz S RI\n1 0.5 --\n", ErrNumber},
		{"ports.s0p", "# Hz S MA\n1 1 0\n", ErrPortCount},
	}
	for _, c := range cases {
		_, err := ParseReader(c.name, strings.NewReader(c.src))
		require.Error(t, err, c.name)
		assert.ErrorIs(t, err, c.kind, c.name)
		var fe *FormatError
		assert.True(t, errors.As(err, &fe), c.name)
	}
}

func TestParseNumberErrorLine(t *testing.T) {
	_, err := ParseReader("n.s1p", strings.NewReader("# Hz S RI\n1 0.5\n2 x 0\n"))
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 3, fe.Line)
	assert.Contains(t, err.Error(), "n.s1p:3")
}

func TestParseReferenceImpedance(t *testing.T) {
	cases := []struct {
		header string
		ref    float64
	}{
		{"# Hz S MA R 75", 75},
		{"# Hz S MA R 1e2", 100},
		{"# Hz S MA R", DefaultReference},
		{"# Hz S MA R abc", DefaultReference},
		{"# Hz S MA R nan", DefaultReference},
		{"# Hz S MA R -50", DefaultReference},
		{"# Hz S MA Z 75", DefaultReference},
		{"# Hz S MA extra tokens here", DefaultReference},
	}
	for _, c := range cases {
		n, err := ParseReader("ref.s1p", strings.NewReader(c.header+"\n1 1 0\n"))
		require.NoError(t, err, c.header)
		assert.Equal(t, c.ref, n.Reference, c.header)
		assert.Equal(t, []float64{1}, n.Freq, c.header)
	}
}

func TestParseAcceptsDecimalForms(t *testing.T) {
	n, err := ParseReader("d.s1p", strings.NewReader("# Hz S RI\n+1.5E3 -.25 5.\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1500}, n.Freq)
	assert.Equal(t, complex(-0.25, 5), n.S[0].At(0, 0))
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.s2p"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func randomNetwork(ports, points int, unit Unit, format Format) *Network {
	n := &Network{Ports: ports, Unit: unit, Format: format, Reference: DefaultReference}
	for k := 0; k < points; k++ {
		s := mat.NewCDense(ports, ports, nil)
		for i := 0; i < ports; i++ {
			for j := 0; j < ports; j++ {
				mag := 0.1 + 0.8*float64((k+1)*(i+2)*(j+3)%17)/17
				ang := float64((k*31+i*7+j*13)%360) - 179
				s.Set(i, j, cmplx.Rect(mag, ang*math.Pi/180))
			}
		}
		if err := n.Append(float64(k+1)*unit.Multiplier()*1.25, s); err != nil {
			panic(err)
		}
	}
	return n
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{MA, DB, RI} {
		for ports := 1; ports <= 4; ports++ {
			want := randomNetwork(ports, 5, MHz, format)
			path := filepath.Join(t.TempDir(), "rt.s"+string(rune('0'+ports))+"p")
			require.NoError(t, WriteFile(path, want))

			got, err := Parse(path)
			require.NoError(t, err)
			require.Equal(t, want.Len(), got.Len())
			require.Equal(t, len(got.Freq), len(got.S))
			assert.Equal(t, format, got.Format)
			for k := range want.Freq {
				assert.InDelta(t, want.Freq[k], got.Freq[k], 1e-6)
				assert.True(t, mat.CEqualApprox(want.S[k], got.S[k], 1e-9),
					"format %s ports %d point %d", format, ports, k)
			}
		}
	}
}

func TestWriteMatchesSerialOrder(t *testing.T) {
	n := &Network{Ports: 2, Unit: Hz, Format: RI, Reference: 50}
	require.NoError(t, n.Append(5, mat.NewCDense(2, 2, []complex128{11, 12, 21, 22})))
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, n))
	assert.Contains(t, buf.String(), "# Hz S RI R 50\n")
	assert.Contains(t, buf.String(), "5 11 0 21 0 12 0 22 0\n")
}

func TestWriteLengthMismatch(t *testing.T) {
	n := randomNetwork(2, 3, GHz, MA)
	n.Freq = n.Freq[:2]
	var buf bytes.Buffer
	require.Error(t, Write(&buf, n))
	assert.Zero(t, buf.Len())
}

func TestWriteFilePortMismatch(t *testing.T) {
	n := randomNetwork(2, 1, GHz, MA)
	err := WriteFile(filepath.Join(t.TempDir(), "x.s3p"), n)
	require.Error(t, err)
}

func TestParam(t *testing.T) {
	n := randomNetwork(2, 3, GHz, RI)
	s21 := n.Param(1, 0)
	require.Len(t, s21, 3)
	for k := range s21 {
		assert.Equal(t, n.S[k].At(1, 0), s21[k])
	}
	assert.Panics(t, func() { n.Param(2, 0) })
	assert.Error(t, n.Append(1, mat.NewCDense(3, 3, nil)))
}
