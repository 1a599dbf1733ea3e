// Package scene is a retained-mode scene graph for composing static images
// out of rectangular drawables.
//
// A scene is a tree of nodes: boxes, sprites, text, and containers that host
// other nodes inside a padded frame. Every node is positioned by attaching a
// point in itself (its origin) to a point in its parent's frame (its anchor),
// optionally offset, and sized either in absolute pixels, as a fraction of
// its parent, or automatically to fit its children.
//
// [Resolve] runs the layout pass, computing draw, layout, children, and
// render rectangles for every node; [Render] resolves and rasterizes the tree
// into an image. Trees are built in code with functional options:
//
//	root := scene.NewContainer(
//	    scene.WithSize(200, 120),
//	    scene.WithPadding(scene.EdgeAll(8)),
//	    scene.WithChildren(
//	        scene.NewBox(scene.RGB(30, 144, 255),
//	            scene.WithSize(1, 1),
//	            scene.WithRelativeSizeAxes(scene.AxesBoth),
//	        ),
//	    ),
//	)
//	img, err := scene.Render(root, 200, 120)
//
// or loaded from XML markup with [Parse] and [ParseFile].
package scene
