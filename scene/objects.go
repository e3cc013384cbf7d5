package scene

import (
	"path/filepath"

	"scene-renderer/core"
	"scene-renderer/math"
)

// CarInteriorScene returns the fixed car-interior scene: a ground plane, a
// curved dashboard with a center touchscreen, the steering assembly, the
// driver's seat and the center console. textureDir is the directory holding
// the scene's image files.
func CarInteriorScene(textureDir string) Scene {
	tex := func(name string) string { return filepath.Join(textureDir, name) }

	return Scene{
		Materials: []MaterialDef{
			{Tag: "matteblack", Diffuse: math.NewVec3(0.1, 0.1, 0.1), Specular: math.NewVec3(0.1, 0.1, 0.1), Shininess: 8},
			{Tag: "polishwhite", Diffuse: math.NewVec3(0.95, 0.95, 0.95), Specular: math.NewVec3(0.5, 0.5, 0.5), Shininess: 32},
			{Tag: "glassscreen", Diffuse: math.NewVec3(0.1, 0.1, 0.1), Specular: math.NewVec3(0.9, 0.9, 0.9), Shininess: 128},
			{Tag: "dashmat", Diffuse: math.NewVec3(0.3, 0.3, 0.3), Specular: math.NewVec3(0.1, 0.1, 0.1), Shininess: 4},
			{Tag: "plastic", Diffuse: math.NewVec3(0.15, 0.15, 0.15), Specular: math.NewVec3(0.3, 0.3, 0.3), Shininess: 16},
		},
		Textures: []TextureFile{
			{Path: tex("leather1.jpg"), Tag: "dash"},
			{Path: tex("tesla_screen.jpg"), Tag: "screen"},
			{Path: tex("leatherwhite.jpg"), Tag: "base"},
			{Path: tex("metalgrid.jpg"), Tag: "ground"},
			{Path: tex("grayleather.jpg"), Tag: "dashText"},
			{Path: tex("black_plastic.jpg"), Tag: "plastic"},
			{Path: tex("steering_wheel.jpg"), Tag: "wheel"},
		},
		Lighting: Lighting{
			// Directional light simulating sunlight through the windshield
			Directional: DirectionalLight{
				Direction: math.NewVec3(0.2, -0.2, -0.5),
				Ambient:   math.NewVec3(0.1, 0.0, 0.1),
				Diffuse:   math.NewVec3(0.8, 0.8, 0.8),
				Specular:  math.NewVec3(0.2, 0.2, 0.2),
				Active:    true,
			},
			// Interior cabin light
			Point: PointLight{
				Position: math.NewVec3(0.0, 2.5, -2.0),
				Ambient:  math.NewVec3(0.05, 0.05, 0.05),
				Diffuse:  math.NewVec3(1.0, 1.0, 1.0),
				Specular: math.NewVec3(0.2, 0.2, 0.2),
				Active:   true,
			},
		},
		Objects: []Object{
			{
				Name: "ground",
				Mesh: MeshPlane,
				Transform: Transform{
					Scale:    math.NewVec3(20.0, 1.0, 10.0),
					Position: math.NewVec3(0.0, 0.0, 0.0),
				},
				Material: "dashmat",
				Surface:  Textured{Tag: "ground"},
			},
			{
				// Cylinder gives the dashboard body its curved front
				Name: "dashboard body",
				Mesh: MeshCylinder,
				Transform: Transform{
					Scale:    math.NewVec3(2.8, 0.12, 0.6),
					Rotation: math.NewVec3(20.0, 0.0, 0.0),
					Position: math.NewVec3(0.0, 0.8, -1.5),
				},
				Material: "dashmat",
				Surface:  Textured{Tag: "dash", UVScale: math.NewVec2(3.0, 1.0)},
			},
			{
				Name: "dashboard top",
				Mesh: MeshBox,
				Transform: Transform{
					Scale:    math.NewVec3(2.8, 0.02, 0.2),
					Rotation: math.NewVec3(5.0, 0.0, 0.0),
					Position: math.NewVec3(0.0, 0.95, -1.4),
				},
				// "metal" is not a defined material; the lookup falls
				// through and the previous material state carries over
				Material: "metal",
				Surface:  Flat{Color: core.Color{R: 0.15, G: 0.15, B: 0.15, A: 1.0}},
			},
			{
				Name: "screen frame",
				Mesh: MeshBox,
				Transform: Transform{
					Scale:    math.NewVec3(0.49, 0.65, 0.04),
					Rotation: math.NewVec3(5.0, 0.0, 0.0),
					Position: math.NewVec3(0.0, 0.9, -0.85),
				},
				Material: "plastic",
				Surface:  Flat{Color: core.Color{R: 0.05, G: 0.05, B: 0.05, A: 1.0}},
			},
			{
				Name: "screen display",
				Mesh: MeshBox,
				Transform: Transform{
					Scale:    math.NewVec3(0.47, 0.63, 0.02),
					Rotation: math.NewVec3(5.0, 0.0, 0.0),
					Position: math.NewVec3(0.0, 0.9, -0.83),
				},
				Material: "glassscreen",
				Surface:  Textured{Tag: "screen", UVScale: math.NewVec2(1.0, 1.0)},
			},
			{
				Name: "steering wheel",
				Mesh: MeshTorus,
				Transform: Transform{
					Scale:    math.NewVec3(0.26, 0.26, 0.05),
					Rotation: math.NewVec3(20.0, 0.0, 0.0),
					Position: math.NewVec3(-0.65, 0.85, -0.7),
				},
				Material: "plastic",
				Surface:  Textured{Tag: "wheel"},
			},
			{
				Name: "steering column",
				Mesh: MeshCylinder,
				Transform: Transform{
					Scale:    math.NewVec3(0.04, 0.41, 0.04),
					Rotation: math.NewVec3(-90.0, 0.0, 0.0),
					Position: math.NewVec3(-0.65, 0.85, -0.7),
				},
				Material: "matteblack",
				Surface:  Flat{Color: core.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0}},
			},
			{
				Name: "airbag cover",
				Mesh: MeshBox,
				Transform: Transform{
					Scale:    math.NewVec3(0.12, 0.12, 0.05),
					Rotation: math.NewVec3(20.0, 0.0, 0.0),
					Position: math.NewVec3(-0.65, 0.85, -0.7),
				},
				Material: "plastic",
				Surface:  Flat{Color: core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1.0}},
			},
			{
				Name: "seat base",
				Mesh: MeshBox,
				Transform: Transform{
					Scale:    math.NewVec3(0.5, 0.1, 0.5),
					Position: math.NewVec3(-0.7, 0.1, 0.0),
				},
				Material: "dashmat",
				Surface:  Textured{Tag: "dash"},
			},
			{
				Name: "seat back",
				Mesh: MeshBox,
				Transform: Transform{
					Scale:    math.NewVec3(0.5, 0.7, 0.1),
					Rotation: math.NewVec3(15.0, 0.0, 0.0),
					Position: math.NewVec3(-0.699, 0.5, 0.35),
				},
				Material: "dashmat",
				Surface:  Textured{Tag: "dash"},
			},
			{
				Name: "center console",
				Mesh: MeshBox,
				Transform: Transform{
					Scale:    math.NewVec3(0.3, 0.25, 1.8),
					Position: math.NewVec3(0.0, 0.2, -0.2),
				},
				Material: "plastic",
				Surface:  Flat{Color: core.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0}},
			},
			{
				Name: "cup holder",
				Mesh: MeshBox,
				Transform: Transform{
					Scale:    math.NewVec3(0.2, 0.1, 0.2),
					Position: math.NewVec3(0.0, 0.3, 0.4),
				},
				Material: "matteblack",
				Surface:  Flat{Color: core.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0}},
			},
		},
	}
}
