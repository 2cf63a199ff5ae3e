// Package golang exposes a Go module's packages, types and package-scope
// objects as a read-only namespace tree, suitable as the source side of a
// patch. Package path segments become module containers, exported named
// types become classes with their declared methods as leaves, and other
// exported package-scope objects become leaves holding their types.Object.
package golang

import (
	"context"
	"fmt"
	"go/types"
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/grafter/namespace"
	"golang.org/x/mod/modfile"
	"golang.org/x/tools/go/packages"
)

// Load inspects the Go module rooted at dir. The returned namespace does not
// implement namespace.Mutable: a Go module is only ever a source.
func Load(ctx context.Context, dir string) (namespace.Namespace, error) {
	modulePath, err := moduleName(ctx, dir)
	if err != nil {
		return nil, err
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode:    packages.NeedName | packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("failed to load packages in %s: %w", dir, err)
	}

	builder := &builder{
		modulePath: modulePath,
		rootName:   path.Base(modulePath),
		containers: make(map[string]*pkgNamespace),
	}
	root := builder.container(builder.rootName, namespace.KindModule)
	for _, pkg := range pkgs {
		if pkg.Types == nil || len(pkg.Errors) > 0 {
			continue
		}
		builder.addPackage(pkg)
	}
	return root, nil
}

// moduleName reads go.mod through afs and parses it with modfile.
func moduleName(ctx context.Context, dir string) (string, error) {
	goMod := filepath.Join(dir, "go.mod")
	fs := afs.New()
	content, err := fs.DownloadWithURL(ctx, goMod)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", goMod, err)
	}
	mod, err := modfile.Parse(goMod, content, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", goMod, err)
	}
	return mod.Module.Mod.Path, nil
}

type builder struct {
	modulePath string
	rootName   string
	containers map[string]*pkgNamespace
}

// container returns the namespace at the dotted path, creating it and any
// missing ancestors as module containers.
func (b *builder) container(dotted string, kind namespace.Kind) *pkgNamespace {
	if existing, ok := b.containers[dotted]; ok {
		return existing
	}
	created := newPkgNamespace(dotted, kind)
	b.containers[dotted] = created
	if idx := strings.LastIndexByte(dotted, '.'); idx >= 0 {
		parent := b.container(dotted[:idx], namespace.KindModule)
		parent.attach(created)
	}
	return created
}

func (b *builder) addPackage(pkg *packages.Package) {
	dotted, ok := b.dottedPath(pkg.PkgPath)
	if !ok {
		return
	}
	owner := b.container(dotted, namespace.KindModule)
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}
		// The defining-scope filter: dot-imported or otherwise reachable
		// foreign objects never join the tree.
		if obj.Pkg() != nil && obj.Pkg().Path() != pkg.PkgPath {
			continue
		}
		if typeName, isType := obj.(*types.TypeName); isType {
			if named, isNamed := typeName.Type().(*types.Named); isNamed {
				owner.attach(b.class(dotted, named))
				continue
			}
		}
		owner.addLeaf(name, obj)
	}
}

// class exposes a named type as a class container with its declared methods
// as leaves. Promoted methods of embedded types belong to their own defining
// type, not here.
func (b *builder) class(owner string, named *types.Named) *pkgNamespace {
	dotted := namespace.Join(owner, named.Obj().Name())
	result := newPkgNamespace(dotted, namespace.KindClass)
	for i := 0; i < named.NumMethods(); i++ {
		method := named.Method(i)
		if !method.Exported() {
			continue
		}
		result.addLeaf(method.Name(), method)
	}
	return result
}

// dottedPath maps an import path within the module to its namespace path.
func (b *builder) dottedPath(pkgPath string) (string, bool) {
	if pkgPath == b.modulePath {
		return b.rootName, true
	}
	if !strings.HasPrefix(pkgPath, b.modulePath+"/") {
		return "", false
	}
	rel := strings.TrimPrefix(pkgPath, b.modulePath+"/")
	return b.rootName + "." + strings.ReplaceAll(rel, "/", "."), true
}
