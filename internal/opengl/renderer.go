package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"scene-renderer/core"
	"scene-renderer/math"
	"scene-renderer/scene"
)

// Renderer is the OpenGL backend. It implements scene.Program,
// scene.TextureBackend and scene.MeshProvider against a single Phong shader
// program, so one value can be handed to scene.NewManager for all three
// collaborator roles.
type Renderer struct {
	program uint32
	inUse   bool

	// uniform locations, resolved once at link time
	locs        [scene.UniformCount]int32
	viewProjLoc int32
	viewPosLoc  int32

	meshes map[scene.MeshKind]*gpuMesh
}

// uniformNames maps each uniform role to its GLSL identifier. The names
// stay private to this package; the scene core only speaks roles.
var uniformNames = [scene.UniformCount]string{
	scene.UniformModel:              "model",
	scene.UniformColor:              "objectColor",
	scene.UniformTexture:            "objectTexture",
	scene.UniformUseTexture:         "bUseTexture",
	scene.UniformUseLighting:        "bUseLighting",
	scene.UniformUVScale:            "UVscale",
	scene.UniformMaterialDiffuse:    "material.diffuseColor",
	scene.UniformMaterialSpecular:   "material.specularColor",
	scene.UniformMaterialShininess:  "material.shininess",
	scene.UniformDirLightDirection:  "directionalLight.direction",
	scene.UniformDirLightAmbient:    "directionalLight.ambient",
	scene.UniformDirLightDiffuse:    "directionalLight.diffuse",
	scene.UniformDirLightSpecular:   "directionalLight.specular",
	scene.UniformDirLightActive:     "directionalLight.bActive",
	scene.UniformPointLightPosition: "pointLight.position",
	scene.UniformPointLightAmbient:  "pointLight.ambient",
	scene.UniformPointLightDiffuse:  "pointLight.diffuse",
	scene.UniformPointLightSpecular: "pointLight.specular",
	scene.UniformPointLightActive:   "pointLight.bActive",
}

const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4 model;
uniform mat4 viewProj;
uniform vec2 UVscale;

out vec3 fragNormal;
out vec3 fragWorldPos;
out vec2 fragUV;

void main() {
    vec4 worldPos = model * vec4(inPosition, 1.0);
    fragWorldPos = worldPos.xyz;
    fragNormal = mat3(model) * inNormal;
    fragUV = inUV * UVscale;
    gl_Position = viewProj * worldPos;
}
` + "\x00"

const fragSrc = `
#version 410 core
in vec3 fragNormal;
in vec3 fragWorldPos;
in vec2 fragUV;

uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec3 viewPos;

struct Material {
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};
uniform Material material;

struct DirectionalLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};
uniform DirectionalLight directionalLight;

struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};
uniform PointLight pointLight;

out vec4 outColor;

vec3 shade(vec3 lightDir, vec3 ambient, vec3 diffuse, vec3 specular,
           vec3 base, vec3 normal, vec3 viewDir) {
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(material.shininess, 1.0));
    return ambient * base
         + diffuse * diff * base * material.diffuseColor
         + specular * spec * material.specularColor;
}

void main() {
    vec4 base = bUseTexture ? texture(objectTexture, fragUV) : objectColor;
    if (!bUseLighting) {
        outColor = base;
        return;
    }

    vec3 normal = normalize(fragNormal);
    vec3 viewDir = normalize(viewPos - fragWorldPos);
    vec3 color = vec3(0.0);

    if (directionalLight.bActive) {
        color += shade(normalize(-directionalLight.direction),
                       directionalLight.ambient,
                       directionalLight.diffuse,
                       directionalLight.specular,
                       base.rgb, normal, viewDir);
    }
    if (pointLight.bActive) {
        color += shade(normalize(pointLight.position - fragWorldPos),
                       pointLight.ambient,
                       pointLight.diffuse,
                       pointLight.specular,
                       base.rgb, normal, viewDir);
    }

    outColor = vec4(color, base.a);
}
` + "\x00"

// NewRenderer initializes OpenGL, compiles and links the shader program,
// resolves all uniform locations and activates the program. The OpenGL
// context must be current on the calling goroutine.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("shader program: %w", err)
	}

	r := &Renderer{
		program: prog,
		meshes:  make(map[scene.MeshKind]*gpuMesh),
	}
	for u, name := range uniformNames {
		r.locs[u] = gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
	}
	r.viewProjLoc = gl.GetUniformLocation(prog, gl.Str("viewProj\x00"))
	r.viewPosLoc = gl.GetUniformLocation(prog, gl.Str("viewPos\x00"))

	gl.UseProgram(prog)
	r.inUse = true

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	return r, nil
}

// ── scene.Program ─────────────────────────────────────────────────────────────

func (r *Renderer) Active() bool {
	return r.inUse
}

func (r *Renderer) SetMat4(u scene.Uniform, m math.Mat4) {
	gl.UniformMatrix4fv(r.locs[u], 1, false, (*float32)(unsafe.Pointer(&m[0][0])))
}

func (r *Renderer) SetVec2(u scene.Uniform, v math.Vec2) {
	gl.Uniform2f(r.locs[u], v.X, v.Y)
}

func (r *Renderer) SetVec3(u scene.Uniform, v math.Vec3) {
	gl.Uniform3f(r.locs[u], v.X, v.Y, v.Z)
}

func (r *Renderer) SetVec4(u scene.Uniform, v math.Vec4) {
	gl.Uniform4f(r.locs[u], v.X, v.Y, v.Z, v.W)
}

func (r *Renderer) SetFloat(u scene.Uniform, f float32) {
	gl.Uniform1f(r.locs[u], f)
}

func (r *Renderer) SetInt(u scene.Uniform, i int32) {
	gl.Uniform1i(r.locs[u], i)
}

func (r *Renderer) SetBool(u scene.Uniform, b bool) {
	v := int32(0)
	if b {
		v = 1
	}
	gl.Uniform1i(r.locs[u], v)
}

// ── Frame state driven by the viewer ──────────────────────────────────────────

// SetViewProjection writes the combined view-projection matrix.
func (r *Renderer) SetViewProjection(view, proj math.Mat4) {
	vp := view.Mul(proj)
	gl.UniformMatrix4fv(r.viewProjLoc, 1, false, (*float32)(unsafe.Pointer(&vp[0][0])))
}

// SetCameraPosition writes the eye position used for specular shading.
func (r *Renderer) SetCameraPosition(pos math.Vec3) {
	gl.Uniform3f(r.viewPosLoc, pos.X, pos.Y, pos.Z)
}

func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears the color and depth buffers.
func (r *Renderer) BeginFrame(clear core.Color) {
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Destroy releases the shader program and all uploaded meshes. Texture
// objects are owned by the texture registry and released through it.
func (r *Renderer) Destroy() {
	for _, m := range r.meshes {
		m.release()
	}
	r.meshes = make(map[scene.MeshKind]*gpuMesh)

	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	r.inUse = false
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("link failed: %v", infoLog)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("compile failed: %v", infoLog)
	}
	return shader, nil
}
