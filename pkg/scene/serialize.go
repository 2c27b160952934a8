package scene

import (
	"encoding/json"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh/meshio"
)

func vecToArray(v mesh.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func arrayToVec(a [3]float64) mesh.Vec3 {
	return mesh.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Wire format for scenes pushed to the scene service. Consumer object
// links do not survive the round trip: actors come back as named
// geometry, which is all a remote viewer needs.

type cameraJSON struct {
	Position      [3]float64 `json:"position"`
	Target        [3]float64 `json:"target"`
	Up            [3]float64 `json:"up"`
	Parallel      bool       `json:"parallel,omitempty"`
	FOV           float64    `json:"fov"`
	ParallelScale float64    `json:"parallel_scale"`
}

type actorJSON struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Style  Style           `json:"style"`
	Hidden bool            `json:"hidden,omitempty"`
	IsEdge bool            `json:"is_edge,omitempty"`
	Mesh   json.RawMessage `json:"mesh"`
}

type sceneJSON struct {
	ID     string      `json:"id"`
	Camera cameraJSON  `json:"camera"`
	Actors []actorJSON `json:"actors"`
}

// Marshal serializes the scene to JSON.
func Marshal(s *Scene) ([]byte, error) {
	out := sceneJSON{
		ID: s.ID,
		Camera: cameraJSON{
			Position:      vecToArray(s.Camera.Position),
			Target:        vecToArray(s.Camera.Target),
			Up:            vecToArray(s.Camera.Up),
			Parallel:      s.Camera.Parallel,
			FOV:           s.Camera.FOV,
			ParallelScale: s.Camera.ParallelScale,
		},
	}
	for _, a := range s.Actors() {
		m := a.Mesh()
		if m == nil {
			continue
		}
		raw, err := meshio.MarshalMesh(m)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to serialize actor %s", a.Name)
		}
		out.Actors = append(out.Actors, actorJSON{
			ID:     a.ID,
			Name:   a.Name,
			Style:  a.Style,
			Hidden: a.Hidden,
			IsEdge: a.IsEdge(),
			Mesh:   raw,
		})
	}
	return json.Marshal(out)
}

// Unmarshal reconstructs a scene from its JSON form.
func Unmarshal(data []byte) (*Scene, error) {
	var in sceneJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse scene")
	}

	s := New()
	if in.ID != "" {
		s.ID = in.ID
	}
	s.Camera = Camera{
		Position:      arrayToVec(in.Camera.Position),
		Target:        arrayToVec(in.Camera.Target),
		Up:            arrayToVec(in.Camera.Up),
		Parallel:      in.Camera.Parallel,
		FOV:           in.Camera.FOV,
		ParallelScale: in.Camera.ParallelScale,
	}

	for _, aj := range in.Actors {
		m, err := meshio.UnmarshalMesh(aj.Mesh)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid mesh for actor %s", aj.Name)
		}
		a := s.AddMesh(aj.Name, m, aj.Style)
		a.Hidden = aj.Hidden
		if aj.ID != "" {
			// Preserve wire IDs so picks stay addressable remotely.
			delete(s.byID, a.ID)
			a.ID = aj.ID
			s.byID[a.ID] = a
		}
	}
	return s, nil
}
