package domain

// ResourceType distinguishes files from directories.
type ResourceType string

const (
	TypeFile      ResourceType = "file"
	TypeDirectory ResourceType = "directory"
)

// Resource is a typed, sized view of a Path as exposed to users. Files
// carry a non-negative size; directories carry none. The shape of the
// path must agree with the type.
type Resource struct {
	Path Path
	Type ResourceType
	Size *int64
	// ContentType is sniffed at upload time for files; empty otherwise.
	ContentType string
}

// NewResource validates the (type, size, path-shape) combination and
// returns the resource. It never returns a partially-valid value.
func NewResource(typ ResourceType, path Path, size *int64) (Resource, error) {
	switch typ {
	case TypeFile:
		if path.IsDirectory() {
			return Resource{}, validationf("file resource cannot have directory path %q", path.String())
		}
		if size == nil {
			return Resource{}, validationf("file resource %q must have a size", path.String())
		}
		if *size < 0 {
			return Resource{}, validationf("file resource %q cannot have negative size", path.String())
		}
	case TypeDirectory:
		if !path.IsDirectory() {
			return Resource{}, validationf("directory resource requires directory path, got %q", path.String())
		}
		if size != nil {
			return Resource{}, validationf("directory resource %q cannot have a size", path.String())
		}
	default:
		return Resource{}, validationf("unknown resource type %q", string(typ))
	}
	return Resource{Path: path, Type: typ, Size: size}, nil
}

// NewFile builds a file resource of the given size.
func NewFile(path Path, size int64) (Resource, error) {
	return NewResource(TypeFile, path, &size)
}

// NewDirectory builds a directory resource.
func NewDirectory(path Path) (Resource, error) {
	return NewResource(TypeDirectory, path, nil)
}

// Name returns the resource's final path segment.
func (r Resource) Name() string { return r.Path.Name() }

// ParentPath returns the directory containing the resource.
func (r Resource) ParentPath() Path { return r.Path.Parent() }

// IsDirectory reports whether the resource is a directory.
func (r Resource) IsDirectory() bool { return r.Type == TypeDirectory }
