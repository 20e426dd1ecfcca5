package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/mathx"
	"github.com/san-kum/orbitlab/internal/physics"
)

const dt = 1.0 / 60.0

func pair(dist float64, m1, m2 float64) []body.Body {
	return []body.Body{
		{Name: "a", Mass: m1, Position: mathx.Vec3{}},
		{Name: "b", Mass: m2, Position: mathx.Vec3{X: dist}},
	}
}

var _ = Describe("ApplyGravity", func() {
	var p physics.Params

	BeforeEach(func() {
		p = physics.DefaultParams()
	})

	It("applies equal and opposite kicks scaled by inverse mass", func() {
		bodies := pair(12.0, 1000.0, 5.0)
		physics.ApplyGravity(bodies, dt, p)

		heavy, light := bodies[0].Velocity, bodies[1].Velocity
		Expect(heavy.X).To(BeNumerically(">", 0))
		Expect(light.X).To(BeNumerically("<", 0))
		Expect(heavy.X * 1000.0).To(BeNumerically("~", -light.X*5.0, 1e-12))
		Expect(heavy.Y).To(BeZero())
		Expect(light.Z).To(BeZero())
	})

	It("matches the closed-form kick for the reference pair", func() {
		// masses 1000 and 5 at distance 12
		bodies := pair(12.0, 1000.0, 5.0)
		physics.ApplyGravity(bodies, dt, p)

		force := p.G * 1000.0 * 5.0 / (12.0 * 12.0)
		expected := force / 5.0 * dt * p.ForceDamping
		Expect(bodies[1].Velocity.Length()).To(BeNumerically("~", expected, 1e-12))
		Expect(bodies[0].Velocity.Length()).To(BeNumerically("~", force/1000.0*dt*p.ForceDamping, 1e-12))
	})

	It("skips pairs closer than the minimum distance", func() {
		bodies := pair(1.99, 1000.0, 5.0)
		physics.ApplyGravity(bodies, dt, p)

		Expect(bodies[0].Velocity.IsZero()).To(BeTrue())
		Expect(bodies[1].Velocity.IsZero()).To(BeTrue())
	})

	It("still applies forces exactly at the minimum distance", func() {
		bodies := pair(p.MinDistance, 10.0, 10.0)
		physics.ApplyGravity(bodies, dt, p)

		Expect(bodies[0].Velocity.IsZero()).To(BeFalse())
	})

	It("conserves total momentum over an unskipped pass", func() {
		bodies := []body.Body{
			{Mass: 1000.0, Position: mathx.Vec3{}},
			{Mass: 5.0, Position: mathx.Vec3{X: 12}, Velocity: mathx.Vec3{Z: 0.8}},
			{Mass: 8.0, Position: mathx.Vec3{X: 20}, Velocity: mathx.Vec3{Z: 0.6}},
			{Mass: 6.0, Position: mathx.Vec3{X: 30}, Velocity: mathx.Vec3{Z: 0.4}},
		}
		before := body.Momentum(bodies)

		physics.ApplyGravity(bodies, dt, p)

		after := body.Momentum(bodies)
		Expect(after.X).To(BeNumerically("~", before.X, 1e-9))
		Expect(after.Y).To(BeNumerically("~", before.Y, 1e-9))
		Expect(after.Z).To(BeNumerically("~", before.Z, 1e-9))
	})

	It("leaves velocities alone when dt is zero", func() {
		bodies := pair(12.0, 1000.0, 5.0)
		physics.ApplyGravity(bodies, 0, p)

		Expect(bodies[0].Velocity.IsZero()).To(BeTrue())
		Expect(bodies[1].Velocity.IsZero()).To(BeTrue())
	})

	It("kicks along the pair axis in three dimensions", func() {
		bodies := []body.Body{
			{Mass: 100.0, Position: mathx.Vec3{}},
			{Mass: 1.0, Position: mathx.Vec3{X: 3, Y: 4, Z: 12}},
		}
		physics.ApplyGravity(bodies, dt, p)

		axis := mathx.Vec3{X: 3, Y: 4, Z: 12}.Normalize()
		kick := bodies[0].Velocity.Normalize()
		Expect(kick.Dot(axis)).To(BeNumerically("~", 1.0, 1e-12))
	})
})

var _ = Describe("Integrate", func() {
	It("is a no-op for dt zero", func() {
		bodies := []body.Body{
			{Position: mathx.Vec3{X: 1, Y: 2, Z: 3}, Velocity: mathx.Vec3{X: 9, Y: 9, Z: 9}},
		}
		physics.Integrate(bodies, 0)

		Expect(bodies[0].Position).To(Equal(mathx.Vec3{X: 1, Y: 2, Z: 3}))
	})

	It("advances position by exactly velocity times dt", func() {
		bodies := []body.Body{
			{Position: mathx.Vec3{X: 1}, Velocity: mathx.Vec3{X: 2, Z: -4}},
		}
		physics.Integrate(bodies, 0.5)

		Expect(bodies[0].Position).To(Equal(mathx.Vec3{X: 2, Z: -2}))
		Expect(bodies[0].Velocity).To(Equal(mathx.Vec3{X: 2, Z: -4}))
	})
})
