/*
go-crowdpost provides detection post processing for crowd and occlusion
aware object detectors that emit multiple candidate boxes per proposal set.
It implements Set-NMS, a Non-Maximum Suppression variant that exempts boxes
originating from the same proposal set from suppressing each other, so two
people standing close together detected by two queries of one proposal both
survive suppression.

The suppress subpackage holds the suppression kernels and the detection
pipeline, the render subpackage draws results on images.  This root package
carries the surrounding plumbing, candidate decoding from raw detector
output buffers, class label loading, union coverage reporting, and a worker
pool for suppressing batches of independent images concurrently.

See example code and usage in the example subdirectory.
*/
package crowdpost
