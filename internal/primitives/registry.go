package primitives

import (
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cactus-gen/internal/cactus"
	"cactus-gen/internal/geom"
)

// uploaded is one solid mesh living on the GPU.
type uploaded struct {
	mesh      rl.Mesh
	material  cactus.Material
	transform rl.Matrix
}

// Registry mirrors the generator's current group on the GPU. Meshes are
// uploaded on the first Sync that sees a new group, so GPU resources are
// allocated after the window/OpenGL context exists. Spines are drawn
// straight from the CPU buffers as lines.
type Registry struct {
	palette  cactus.Palette
	group    *cactus.Group
	meshes   []uploaded
	lines    []cactus.Placed
	shader   rl.Shader
	mtls     map[cactus.Material]rl.Material
	surfaces map[cactus.Material]surface

	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns an empty registry that colours meshes from palette.
func NewRegistry(palette cactus.Palette) *Registry {
	if palette == nil {
		palette = cactus.DefaultPalette()
	}
	return &Registry{
		palette:  palette,
		mtls:     make(map[cactus.Material]rl.Material),
		surfaces: make(map[cactus.Material]surface),
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before Draw so meshes get correct shading.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// Sync makes g the drawn group. When g differs from the group already
// uploaded, the new meshes are uploaded first and the old ones unloaded
// after, so a frame never draws a half-uploaded cactus. A nil g clears the
// registry.
func (r *Registry) Sync(g *cactus.Group) {
	if g == r.group {
		return
	}
	var meshes []uploaded
	var lines []cactus.Placed
	if g != nil {
		for _, p := range g.SolidMeshes() {
			mesh, ok := upload(p.Buffer)
			if !ok {
				continue
			}
			meshes = append(meshes, uploaded{mesh: mesh, material: p.Material, transform: placement(p)})
		}
		lines = g.LineSegments()
	}
	old := r.meshes
	r.group, r.meshes, r.lines = g, meshes, lines
	for i := range old {
		rl.UnloadMesh(&old[i].mesh)
	}
}

// Group returns the group currently mirrored on the GPU.
func (r *Registry) Group() *cactus.Group {
	return r.group
}

// upload copies buf to the GPU as an unindexed triangle list. The CPU
// arrays are only pinned for the duration of the upload; afterwards the mesh
// holds GPU handles alone, so UnloadMesh never frees Go memory.
func upload(buf *geom.Buffer) (rl.Mesh, bool) {
	verts, norms := flatten(buf)
	if len(verts) == 0 {
		return rl.Mesh{}, false
	}
	var pinner runtime.Pinner
	defer pinner.Unpin()
	pinner.Pin(&verts[0])
	pinner.Pin(&norms[0])

	mesh := rl.Mesh{
		VertexCount:   int32(len(verts) / 3),
		TriangleCount: int32(len(verts) / 9),
		Vertices:      &verts[0],
		Normals:       &norms[0],
	}
	rl.UploadMesh(&mesh, false)
	mesh.Vertices = nil
	mesh.Normals = nil
	return mesh, true
}

// flatten expands an indexed buffer into per-corner positions and normals.
func flatten(buf *geom.Buffer) (verts, norms []float32) {
	if buf == nil || buf.VertexCount() == 0 {
		return nil, nil
	}
	if buf.Indices == nil {
		n := buf.VertexCount() / 3 * 9
		return append([]float32(nil), buf.Positions[:n]...), append([]float32(nil), buf.Normals[:n]...)
	}
	verts = make([]float32, 0, len(buf.Indices)*3)
	norms = make([]float32, 0, len(buf.Indices)*3)
	for _, idx := range buf.Indices {
		p, n := buf.Position(int(idx)), buf.Normal(int(idx))
		verts = append(verts, p.X, p.Y, p.Z)
		norms = append(norms, n.X, n.Y, n.Z)
	}
	return verts, norms
}

// placement builds the model matrix for p: Euler rotation applied Z, Y, X,
// then translation by the primitive position and every group offset.
func placement(p cactus.Placed) rl.Matrix {
	rot := p.Transform.Rotation
	m := rl.MatrixMultiply(rl.MatrixRotateZ(rot.Z), rl.MatrixRotateY(rot.Y))
	m = rl.MatrixMultiply(m, rl.MatrixRotateX(rot.X))
	at := p.Transform.Position.Add(p.Offset)
	return rl.MatrixMultiply(m, rl.MatrixTranslate(at.X, at.Y, at.Z))
}

// material returns the lit material for m, creating it on first use.
func (r *Registry) material(m cactus.Material) (rl.Material, surface) {
	if mtl, ok := r.mtls[m]; ok {
		return mtl, r.surfaces[m]
	}
	if !rl.IsShaderValid(r.shader) {
		r.shader = loadLitShader()
	}
	s := resolve(r.palette, m)
	mtl := rl.LoadMaterialDefault()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = s.color
	}
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	r.mtls[m] = mtl
	r.surfaces[m] = s
	return mtl, s
}

// Draw draws every mesh and spine set of the synced group.
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) Draw() {
	for _, u := range r.meshes {
		mtl, s := r.material(u.material)
		r.setLitShaderUniforms(mtl.Shader, s.specular)
		rl.DrawMesh(u.mesh, mtl, u.transform)
	}
	for _, p := range r.lines {
		color := resolve(r.palette, p.Material).color
		buf := p.Buffer
		for i := 0; i+1 < buf.VertexCount(); i += 2 {
			a, b := p.World(buf.Position(i)), p.World(buf.Position(i+1))
			rl.DrawLine3D(rl.NewVector3(a.X, a.Y, a.Z), rl.NewVector3(b.X, b.Y, b.Z), color)
		}
	}
}

// Close unloads every GPU resource the registry created.
func (r *Registry) Close() {
	r.Sync(nil)
	for m, mtl := range r.mtls {
		// The lit shader is shared; unload it once below, not per material.
		mtl.Shader = rl.Shader{}
		rl.UnloadMaterial(mtl)
		delete(r.mtls, m)
	}
	if rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.shader = rl.Shader{}
}

// loadLitShader returns a shader that does simple directional light + ambient.
// Same vertex attributes as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// defaultAmbient is the ambient term (dim so shadowed areas aren't pure black).
var defaultAmbient = [4]float32{0.35, 0.35, 0.38, 1.0}

// defaultLightColor is a soft warm-white for the directional light.
var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

// defaultLightIntensity scales the directional diffuse (0–1).
const defaultLightIntensity = float32(0.8)

// defaultSpecularPower controls highlight tightness (higher = smaller, sharper highlight).
const defaultSpecularPower = float32(32.0)

// setLitShaderUniforms sets the lighting uniforms on shader (cgo-safe: local arrays).
func (r *Registry) setLitShaderUniforms(shader rl.Shader, specular float32) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	lightColor := [3]float32{defaultLightColor[0], defaultLightColor[1], defaultLightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specular}, rl.ShaderUniformFloat)
	}
}
