package obj

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

const maxLineSize = 1 << 20

// Parse reads the OBJ file at path. The file is closed before Parse returns.
func Parse(path string, opts Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Msg: "open", Err: err}
	}
	defer f.Close()

	doc, err := Decode(f, opts)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Decode parses an OBJ document from r.
func Decode(r io.Reader, opts Options) (*Document, error) {
	p := &parser{doc: &Document{}, opts: opts}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var pending string
	pendingLine := 0
	for sc.Scan() {
		p.line++
		text := stripComment(strings.TrimRight(sc.Text(), "\r"))
		if pending == "" {
			pendingLine = p.line
		}
		// Backslash continues the statement on the next line. Comments are
		// gone by now, so a comment never continues.
		if body, ok := strings.CutSuffix(strings.TrimRight(text, " \t"), "\\"); ok {
			pending += body + " "
			continue
		}
		text = pending + text
		pending = ""

		if err := p.parseLine(text, pendingLine); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: p.line, Msg: "read", Err: err}
	}
	if pending != "" {
		if err := p.parseLine(pending, pendingLine); err != nil {
			return nil, err
		}
	}

	if err := p.checkOptionalRefs(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

func stripComment(text string) string {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		return text[:i]
	}
	return text
}

type parser struct {
	doc      *Document
	opts     Options
	line     int
	group    string
	material string
}

func (p *parser) errorf(line int, msg string, err error) error {
	return &ParseError{Line: line, Msg: msg, Err: err}
}

func (p *parser) parseLine(text string, line int) error {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	ident, args := fields[0], fields[1:]

	switch ident {
	case "v":
		v, err := p.floats(args, 3, line, "vertex")
		if err != nil {
			return err
		}
		p.doc.Positions = append(p.doc.Positions, mgl32.Vec3{v[0], v[1], v[2]})
	case "vn":
		v, err := p.floats(args, 3, line, "normal")
		if err != nil {
			return err
		}
		p.doc.Normals = append(p.doc.Normals, mgl32.Vec3{v[0], v[1], v[2]})
	case "vt":
		v, err := p.floats(args, 1, line, "texcoord")
		if err != nil {
			return err
		}
		tc := mgl32.Vec2{v[0]}
		if len(v) > 1 {
			tc[1] = v[1]
		}
		p.doc.TexCoords = append(p.doc.TexCoords, tc)
	case "f":
		return p.parseFace(args, line)
	case "o", "g":
		p.group = strings.Join(args, " ")
		p.doc.Groups = appendUnique(p.doc.Groups, p.group)
	case "usemtl":
		p.material = strings.Join(args, " ")
		p.doc.Materials = appendUnique(p.doc.Materials, p.material)
	case "mtllib":
		for _, lib := range args {
			p.doc.MaterialLibs = appendUnique(p.doc.MaterialLibs, lib)
		}
	default:
		// s, l, p and vendor extensions carry nothing a triangle mesh needs
	}
	return nil
}

func (p *parser) floats(args []string, min, line int, what string) ([]float32, error) {
	if len(args) < min {
		return nil, p.errorf(line, what+": expected "+strconv.Itoa(min)+" values, got "+strconv.Itoa(len(args)), nil)
	}
	n := len(args)
	if n > 3 {
		n = 3
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return nil, p.errorf(line, what+": bad number "+strconv.Quote(args[i]), err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func (p *parser) parseFace(args []string, line int) error {
	if len(args) < 3 {
		return p.errorf(line, "face: need at least 3 corners, got "+strconv.Itoa(len(args)), nil)
	}
	corners := make([]Corner, len(args))
	for i, a := range args {
		c, err := p.parseCorner(a, line)
		if err != nil {
			return err
		}
		corners[i] = c
	}

	if !p.opts.Triangulate || len(corners) == 3 {
		p.addFace(corners, line)
		return nil
	}
	for i := 1; i+1 < len(corners); i++ {
		p.addFace([]Corner{corners[0], corners[i], corners[i+1]}, line)
	}
	return nil
}

func (p *parser) addFace(corners []Corner, line int) {
	p.doc.Faces = append(p.doc.Faces, Face{
		Corners:  corners,
		Group:    p.group,
		Material: p.material,
		Line:     line,
	})
}

// parseCorner decodes "p", "p/t", "p//n" or "p/t/n".
func (p *parser) parseCorner(s string, line int) (Corner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 || parts[0] == "" {
		return Corner{}, p.errorf(line, "face: bad corner "+strconv.Quote(s), nil)
	}

	var c Corner
	pos, err := p.index(parts[0], len(p.doc.Positions), line)
	if err != nil {
		return Corner{}, err
	}
	c.Position = pos

	if len(parts) > 1 && parts[1] != "" {
		ti, err := p.index(parts[1], len(p.doc.TexCoords), line)
		if err != nil {
			return Corner{}, err
		}
		c.TexCoord = Ref{Index: ti, Valid: true}
	}
	if len(parts) > 2 && parts[2] != "" {
		ni, err := p.index(parts[2], len(p.doc.Normals), line)
		if err != nil {
			return Corner{}, err
		}
		c.Normal = Ref{Index: ni, Valid: true}
	}
	return c, nil
}

// index converts a 1-based or negative relative OBJ index to zero-based.
func (p *parser) index(s string, count, line int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, p.errorf(line, "face: bad index "+strconv.Quote(s), err)
	}
	switch {
	case i > 0:
		return i - 1, nil
	case i < 0:
		return count + i, nil
	default:
		return 0, p.errorf(line, "face: index 0 is not valid, indices start at 1", nil)
	}
}

// checkOptionalRefs rejects texcoord and normal references that point past
// the attribute arrays. Position references are left to the caller.
func (p *parser) checkOptionalRefs() error {
	nt, nn := len(p.doc.TexCoords), len(p.doc.Normals)
	for _, f := range p.doc.Faces {
		for _, c := range f.Corners {
			if c.TexCoord.Valid && (c.TexCoord.Index < 0 || c.TexCoord.Index >= nt) {
				return p.errorf(f.Line, "face: texcoord index "+strconv.Itoa(c.TexCoord.Index+1)+" out of range", nil)
			}
			if c.Normal.Valid && (c.Normal.Index < 0 || c.Normal.Index >= nn) {
				return p.errorf(f.Line, "face: normal index "+strconv.Itoa(c.Normal.Index+1)+" out of range", nil)
			}
		}
	}
	return nil
}

func appendUnique(list []string, s string) []string {
	for _, x := range list {
		if x == s {
			return list
		}
	}
	return append(list, s)
}
