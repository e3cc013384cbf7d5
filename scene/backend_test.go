package scene

import (
	"fmt"
	"strconv"

	"scene-renderer/math"
)

func itoa(u Uniform) string {
	return strconv.Itoa(int(u))
}

// eventLog collects shader pushes and draw calls in order so tests can
// assert on the exact sequence a frame produces.
type eventLog struct {
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	if l != nil {
		l.events = append(l.events, fmt.Sprintf(format, args...))
	}
}

// fakeBackend is an in-memory TextureBackend.
type createdTexture struct {
	pixels   []byte
	width    int
	height   int
	channels int
	handle   uint32
}

type boundUnit struct {
	slot   int
	handle uint32
}

type fakeBackend struct {
	nextHandle uint32
	created    []createdTexture
	bound      []boundUnit
	deleted    []uint32
	createErr  error
}

func (b *fakeBackend) CreateTexture(pixels []byte, width, height, channels int) (uint32, error) {
	if b.createErr != nil {
		return 0, b.createErr
	}
	b.nextHandle++
	b.created = append(b.created, createdTexture{
		pixels:   pixels,
		width:    width,
		height:   height,
		channels: channels,
		handle:   b.nextHandle,
	})
	return b.nextHandle, nil
}

func (b *fakeBackend) BindTexture(slot int, handle uint32) {
	b.bound = append(b.bound, boundUnit{slot: slot, handle: handle})
}

func (b *fakeBackend) DeleteTexture(handle uint32) {
	b.deleted = append(b.deleted, handle)
}

// fakeProgram is an in-memory Program recording every push.
type uniformPush struct {
	uniform Uniform
	value   any
}

type fakeProgram struct {
	inactive bool
	pushes   []uniformPush
	log      *eventLog
}

func (p *fakeProgram) record(u Uniform, kind string, value any) {
	p.pushes = append(p.pushes, uniformPush{uniform: u, value: value})
	p.log.add("push:%s:%d", kind, u)
}

func (p *fakeProgram) Active() bool                    { return !p.inactive }
func (p *fakeProgram) SetMat4(u Uniform, m math.Mat4)  { p.record(u, "mat4", m) }
func (p *fakeProgram) SetVec2(u Uniform, v math.Vec2)  { p.record(u, "vec2", v) }
func (p *fakeProgram) SetVec3(u Uniform, v math.Vec3)  { p.record(u, "vec3", v) }
func (p *fakeProgram) SetVec4(u Uniform, v math.Vec4)  { p.record(u, "vec4", v) }
func (p *fakeProgram) SetFloat(u Uniform, f float32)   { p.record(u, "float", f) }
func (p *fakeProgram) SetInt(u Uniform, i int32)       { p.record(u, "int", i) }
func (p *fakeProgram) SetBool(u Uniform, b bool)       { p.record(u, "bool", b) }

// last returns the most recent push for u, if any.
func (p *fakeProgram) last(u Uniform) (uniformPush, bool) {
	for i := len(p.pushes) - 1; i >= 0; i-- {
		if p.pushes[i].uniform == u {
			return p.pushes[i], true
		}
	}
	return uniformPush{}, false
}

func (p *fakeProgram) count(u Uniform) int {
	n := 0
	for _, push := range p.pushes {
		if push.uniform == u {
			n++
		}
	}
	return n
}

// fakeMeshes is an in-memory MeshProvider.
type fakeMeshes struct {
	loads   []MeshKind
	draws   []MeshKind
	loadErr error
	log     *eventLog
}

func (m *fakeMeshes) LoadMesh(kind MeshKind) error {
	if m.loadErr != nil {
		return m.loadErr
	}
	m.loads = append(m.loads, kind)
	return nil
}

func (m *fakeMeshes) DrawMesh(kind MeshKind) {
	m.draws = append(m.draws, kind)
	m.log.add("draw:%s", kind)
}
